// Package flydent resolves aviation identifiers (registration callsigns,
// 24-bit ICAO addresses, and US N-Numbers) to their issuing country or
// operating organization, using ITU-derived reference data embedded at
// build time.
//
//	p, err := flydent.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if r, ok := p.ParseSimple("T6ABC"); ok {
//	    fmt.Println(r.Nation, r.ISO2) // Afghanistan AF
//	}
package flydent

import (
	_ "embed"
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

//go:embed data/itu_countries.csv
var countriesCSV string

//go:embed data/itu_organizations.csv
var organizationsCSV string

// EntityKind tags an EntityResult as a country or an organization.
type EntityKind int

const (
	EntityCountry EntityKind = iota
	EntityOrganization
)

// EntityResult identifies the country or organization an identifier
// resolved to. Nation/ISO2/ISO3 are set for countries, Name for
// organizations; Description is common to both.
type EntityResult struct {
	Kind        EntityKind
	Nation      string // country name, EntityCountry only
	ISO2        string // ISO 3166-1 alpha-2, EntityCountry only
	ISO3        string // ISO 3166-1 alpha-3, EntityCountry only
	Name        string // organization name, EntityOrganization only
	Description string
}

// entityRecord is one row of the reference dataset with its patterns
// compiled. Records are immutable once the Parser is built; both indexes
// reference them by position.
type entityRecord struct {
	result        EntityResult
	priority      int
	callsigns     []string
	pattern       string
	strictPattern string
	re            *regexp.Regexp // nil when pattern failed to compile
	strictRe      *regexp.Regexp
	icaoPrefixes  []string
}

// Config holds the raw dataset assets a Parser is built from.
type Config struct {
	CountryData      string // countries CSV (10-field schema)
	OrganizationData string // organizations CSV (9-field schema)
}

// Option is a functional option for configuring a Parser.
type Option func(*Config)

// WithCountryData substitutes the embedded countries CSV.
func WithCountryData(csv string) Option {
	return func(c *Config) {
		c.CountryData = csv
	}
}

// WithOrganizationData substitutes the embedded organizations CSV.
func WithOrganizationData(csv string) Option {
	return func(c *Config) {
		c.OrganizationData = csv
	}
}

// Parser resolves callsigns and ICAO addresses against the reference
// dataset. Safe for concurrent use after construction; nothing mutates
// its state afterwards.
type Parser struct {
	records      []entityRecord
	callsignIdx  map[string][]int // literal callsign prefix -> record positions
	icaoIdx      map[string]int   // literal hex prefix -> record position
	minPrefixLen int
	maxPrefixLen int
}

// Singleton default parser, built on first use.
var (
	defaultParser     *Parser
	defaultParserOnce sync.Once
	defaultParserErr  error
)

// Default returns a shared Parser over the embedded dataset, building it
// on first call.
func Default() (*Parser, error) {
	defaultParserOnce.Do(func() {
		defaultParser, defaultParserErr = NewParser()
	})
	return defaultParser, defaultParserErr
}

// NewParser builds a Parser from the reference dataset. Without options it
// uses the embedded ITU CSV assets.
func NewParser(opts ...Option) (*Parser, error) {
	cfg := &Config{
		CountryData:      countriesCSV,
		OrganizationData: organizationsCSV,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Parser{}
	p.loadCountries(cfg.CountryData)
	p.loadOrganizations(cfg.OrganizationData)
	p.buildIndexes()
	return p, nil
}

// loadCountries appends country records from the 10-field CSV schema:
// nation, description, priority, ISO code list, callsign list, suffix
// ranges, loose regex, block start, block end, ICAO prefix list.
// Countries always load before organizations so dataset order (and with
// it index insertion order) is stable.
func (p *Parser) loadCountries(data string) {
	for _, fields := range csvRecords(data) {
		if len(fields) < 10 {
			continue
		}
		priority, _ := strconv.Atoi(fields[2])
		isoCodes := parseListLiteral(fields[3])

		rec := entityRecord{
			result: EntityResult{
				Kind:        EntityCountry,
				Nation:      fields[0],
				Description: fields[1],
			},
			priority:     priority,
			callsigns:    parseListLiteral(fields[4]),
			pattern:      fields[6],
			icaoPrefixes: parseListLiteral(fields[9]),
		}
		if len(isoCodes) > 0 {
			rec.result.ISO2 = isoCodes[0]
		}
		if len(isoCodes) > 1 {
			rec.result.ISO3 = isoCodes[1]
		}
		p.appendRecord(rec)
	}
}

// loadOrganizations appends organization records from the 9-field CSV
// schema: name, description, priority, callsign list, suffix ranges,
// loose regex, block start, block end, ICAO prefix list.
func (p *Parser) loadOrganizations(data string) {
	for _, fields := range csvRecords(data) {
		if len(fields) < 9 {
			continue
		}
		priority, _ := strconv.Atoi(fields[2])
		p.appendRecord(entityRecord{
			result: EntityResult{
				Kind:        EntityOrganization,
				Name:        fields[0],
				Description: fields[1],
			},
			priority:     priority,
			callsigns:    parseListLiteral(fields[3]),
			pattern:      fields[5],
			icaoPrefixes: parseListLiteral(fields[8]),
		})
	}
}

// appendRecord derives the strict pattern and compiles both variants
// before storing the record. The strict form makes the optional hyphen
// mandatory and drops the optional quantifier on the trailing group. A
// pattern that fails to compile leaves a nil matcher, so the record can
// never match; load never fails on bad rows.
func (p *Parser) appendRecord(rec entityRecord) {
	rec.strictPattern = strings.ReplaceAll(rec.pattern, "-{0,1}", `\-`)
	rec.strictPattern = strings.ReplaceAll(rec.strictPattern, "{0,1}$", "$")

	var err error
	if rec.re, err = regexp.Compile(rec.pattern); err != nil {
		log.Printf("flydent: skipping unparseable pattern %q: %v", rec.pattern, err)
	}
	if rec.strictRe, err = regexp.Compile(rec.strictPattern); err != nil {
		log.Printf("flydent: skipping unparseable strict pattern %q: %v", rec.strictPattern, err)
	}
	p.records = append(p.records, rec)
}

// buildIndexes derives the two prefix indexes from the loaded records.
// Callsign prefixes are multi-valued in dataset order; ICAO prefixes are
// single-valued with the last-loaded record winning a collision.
func (p *Parser) buildIndexes() {
	p.callsignIdx = make(map[string][]int)
	p.icaoIdx = make(map[string]int)

	for i, rec := range p.records {
		for _, cs := range rec.callsigns {
			p.callsignIdx[cs] = append(p.callsignIdx[cs], i)
		}
		for _, prefix := range rec.icaoPrefixes {
			p.icaoIdx[prefix] = i
		}
	}

	for cs := range p.callsignIdx {
		if p.minPrefixLen == 0 || len(cs) < p.minPrefixLen {
			p.minPrefixLen = len(cs)
		}
		if len(cs) > p.maxPrefixLen {
			p.maxPrefixLen = len(cs)
		}
	}
}

// RecordCount returns the number of loaded reference records. Useful for
// testing and debugging.
func (p *Parser) RecordCount() int {
	return len(p.records)
}

// classifyRegistration matches a callsign against the dataset. Candidates
// are gathered through the callsign prefix index by ascending prefix
// length, filtered by the loose or strict pattern, and the highest
// priority group among the matches wins.
func (p *Parser) classifyRegistration(input string, strict bool) []int {
	var candidates []int
	for l := p.minPrefixLen; l <= p.maxPrefixLen; l++ {
		if len(input) < l {
			continue
		}
		candidates = append(candidates, p.callsignIdx[input[:l]]...)
	}
	if len(candidates) == 0 {
		return nil
	}

	matchesByPriority := make(map[int][]int)
	for _, idx := range candidates {
		rec := &p.records[idx]
		re := rec.re
		if strict {
			re = rec.strictRe
		}
		if re != nil && re.MatchString(input) {
			matchesByPriority[rec.priority] = append(matchesByPriority[rec.priority], idx)
		}
	}
	if len(matchesByPriority) == 0 {
		return nil
	}

	maxPriority, found := 0, false
	for priority := range matchesByPriority {
		if !found || priority > maxPriority {
			maxPriority = priority
			found = true
		}
	}
	return matchesByPriority[maxPriority]
}

// icaoHexRe validates strict-mode record-level ICAO input.
var icaoHexRe = regexp.MustCompile(`^[0-9A-F]{6}$`)

// classifyICAO matches a hex ICAO address string against the record-level
// prefix index. Hits are collected by ascending prefix length, so the
// shortest matching literal prefix comes first; callers take the first
// hit. The country allocation table in icao.go resolves the other way,
// longest prefix first; both behaviors are pinned by tests and must not
// be unified silently.
func (p *Parser) classifyICAO(input string, strict bool) []int {
	if strict && !icaoHexRe.MatchString(input) {
		log.Printf("flydent: ICAO 24-bit %q must be hexadecimal with length of 6 chars", input)
		return nil
	}

	var matches []int
	for l := 1; l <= len(input); l++ {
		if idx, ok := p.icaoIdx[input[:l]]; ok {
			matches = append(matches, idx)
		}
	}
	return matches
}

// Parse resolves an identifier to its issuing country or organization.
// With icao24bit set the input is treated as a 6-hex-digit ICAO address,
// otherwise as a registration callsign. Strict mode requires the
// punctuation and suffix elements that loose mode leaves optional. A
// false return means no record matched; that is a normal outcome, not an
// error.
func (p *Parser) Parse(input string, strict, icao24bit bool) (EntityResult, bool) {
	var matches []int
	if icao24bit {
		matches = p.classifyICAO(input, strict)
	} else {
		matches = p.classifyRegistration(input, strict)
	}
	if len(matches) == 0 {
		return EntityResult{}, false
	}
	return p.records[matches[0]].result, true
}

// ParseSimple resolves a callsign in loose mode.
func (p *Parser) ParseSimple(input string) (EntityResult, bool) {
	return p.Parse(input, false, false)
}

// maxNationDistance caps the edit distance FindNation tolerates. Nation
// names are long enough that two edits still identify them unambiguously,
// while three would start conflating neighbours.
const maxNationDistance = 2

// FindNation looks up a country record by nation name, tolerating small
// typos ("Afganistan" still finds Afghanistan). Exact case-insensitive
// matches win over fuzzy ones; among fuzzy matches the smallest edit
// distance wins, dataset order breaking ties.
func (p *Parser) FindNation(query string) (EntityResult, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return EntityResult{}, false
	}

	bestIdx, bestDist := -1, maxNationDistance+1
	for i, rec := range p.records {
		if rec.result.Kind != EntityCountry {
			continue
		}
		if strings.EqualFold(query, rec.result.Nation) {
			return rec.result, true
		}
		dist := levenshtein.ComputeDistance(
			strings.ToLower(query),
			strings.ToLower(rec.result.Nation),
		)
		if dist < bestDist {
			bestIdx, bestDist = i, dist
		}
	}
	if bestIdx < 0 {
		return EntityResult{}, false
	}
	return p.records[bestIdx].result, true
}
