package flydent

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type FlydentSuite struct {
	testIdentifiers []map[string]string
}

var _ = Suite(&FlydentSuite{})

var p *Parser

func (s *FlydentSuite) SetUpSuite(c *C) {
	s.testIdentifiers = append(s.testIdentifiers, map[string]string{"query": "T6ABC", "nation": "Afghanistan", "iso2": "AF", "iso3": "AFG"})
	s.testIdentifiers = append(s.testIdentifiers, map[string]string{"query": "VH-ABC", "nation": "Australia", "iso2": "AU", "iso3": "AUS"})
	s.testIdentifiers = append(s.testIdentifiers, map[string]string{"query": "D-ABCD", "nation": "Germany", "iso2": "DE", "iso3": "DEU"})
	s.testIdentifiers = append(s.testIdentifiers, map[string]string{"query": "G-ABCD", "nation": "United Kingdom", "iso2": "GB", "iso3": "GBR"})
	s.testIdentifiers = append(s.testIdentifiers, map[string]string{"query": "N8437D", "nation": "United States", "iso2": "US", "iso3": "USA"})
	s.testIdentifiers = append(s.testIdentifiers, map[string]string{"query": "JA8089", "nation": "Japan", "iso2": "JP", "iso3": "JPN"})
}

func (s *FlydentSuite) TestADefaultParser(c *C) {
	var err error
	p, err = Default()
	c.Assert(err, IsNil)
	c.Assert(p, Not(IsNil))
	c.Assert(p.RecordCount(), Not(Equals), 0)
	c.Assert(len(p.callsignIdx), Not(Equals), 0)
	c.Assert(len(p.icaoIdx), Not(Equals), 0)
	c.Assert(p.records, FitsTypeOf, []entityRecord(nil))
	c.Assert(p.callsignIdx, FitsTypeOf, make(map[string][]int))
	c.Assert(p.icaoIdx, FitsTypeOf, make(map[string]int))
	c.Assert(p.minPrefixLen, Equals, 1)
	c.Assert(p.maxPrefixLen, Equals, 4)
}

func (s *FlydentSuite) TestParseSimple(c *C) {
	for _, v := range s.testIdentifiers {
		r, ok := p.ParseSimple(v["query"])
		c.Assert(ok, Equals, true, Commentf("query %q", v["query"]))
		c.Assert(r.Kind, Equals, EntityCountry)
		c.Assert(r.Nation, Equals, v["nation"])
		c.Assert(r.ISO2, Equals, v["iso2"])
		c.Assert(r.ISO3, Equals, v["iso3"])
	}
}

func (s *FlydentSuite) TestParseOrganization(c *C) {
	r, ok := p.ParseSimple("4Y123")
	c.Assert(ok, Equals, true)
	c.Assert(r.Kind, Equals, EntityOrganization)
	c.Assert(r.Name, Equals, "International Civil Aviation Organization")
	c.Assert(r.Description, Equals, "general")
	c.Assert(r.Nation, Equals, "")
}

func (s *FlydentSuite) TestParseICAO24(c *C) {
	r, ok := p.Parse("700123", false, true)
	c.Assert(ok, Equals, true)
	c.Assert(r.Nation, Equals, "Afghanistan")

	r, ok = p.Parse("A12345", false, true)
	c.Assert(ok, Equals, true)
	c.Assert(r.Nation, Equals, "United States")
}

func BenchmarkParseSimple(b *testing.B) {
	p, err := Default()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.ParseSimple("T6ABC")
	}
}

func BenchmarkParseICAO24(b *testing.B) {
	p, err := Default()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse("700123", false, true)
	}
}

func BenchmarkNewParser(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NewParser(); err != nil {
			b.Fatal(err)
		}
	}
}
