package respond

import (
	"strconv"
	"strings"
)

// format is the body encoding chosen for a problem document.
type format int

const (
	formatJSON format = iota
	formatCBOR
)

// mediaRange is one element of an Accept header.
type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Types are lowercased,
// a bare type ("text") is read as "text/*", and a missing, malformed or
// out-of-range q parameter counts as 1.0. When q repeats, the last one wins.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		typ, subtype, found := strings.Cut(strings.ToLower(strings.TrimSpace(params[0])), "/")
		if !found {
			subtype = "*"
		}
		typ, subtype = strings.TrimSpace(typ), strings.TrimSpace(subtype)
		if typ == "" {
			continue
		}

		mr := mediaRange{typ: typ, subtype: subtype, q: 1}
		for _, p := range params[1:] {
			key, val, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil || q < 0 || q > 1 {
				q = 1
			}
			mr.q = q
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity ranks how precisely m names application/subtype, or reports false
// when it does not match. An exact structured type (problem+cbor) outranks an
// exact base type (cbor), which outranks a suffix wildcard (*+cbor), a subtype
// wildcard (application/*) and finally */*.
func (m mediaRange) specificity(typ, subtype string) (int, bool) {
	switch {
	case m.typ == "*" && m.subtype == "*":
		return 0, true
	case m.typ != typ:
		return 0, false
	case m.subtype == "*":
		return 1, true
	case strings.HasPrefix(m.subtype, "*+"):
		suffix := m.subtype[2:]
		if subtype == suffix || strings.HasSuffix(subtype, "+"+suffix) {
			return 2, true
		}
		return 0, false
	case m.subtype == subtype:
		if strings.Contains(subtype, "+") {
			return 4, true
		}
		return 3, true
	}
	return 0, false
}

// preference is the weight a client gives to one media type.
type preference struct {
	q    float64
	rank int
}

func (p preference) better(o preference) bool {
	return p.q > o.q || (p.q == o.q && p.rank > o.rank)
}

// preferenceFor returns the weight of the most specific range matching subtype.
func preferenceFor(ranges []mediaRange, subtype string) preference {
	var best preference
	bestRank := -1
	for _, r := range ranges {
		rank, ok := r.specificity("application", subtype)
		if !ok {
			continue
		}
		if rank > bestRank || (rank == bestRank && r.q > best.q) {
			bestRank = rank
			best = preference{q: r.q, rank: rank}
		}
	}
	return best
}

// familyPreference returns the strongest preference among the given subtypes.
func familyPreference(ranges []mediaRange, subtypes ...string) preference {
	var best preference
	for _, s := range subtypes {
		if p := preferenceFor(ranges, s); p.better(best) {
			best = p
		}
	}
	return best
}

// selectFormat picks JSON or CBOR for a problem document following RFC 9110
// section 12.5.1: q-value first, specificity as tie-breaker, JSON whenever
// CBOR is not strictly preferred.
func selectFormat(accept string) format {
	if strings.TrimSpace(accept) == "" {
		return formatJSON
	}
	ranges := parseAccept(accept)
	cborPref := familyPreference(ranges, "problem+cbor", "cbor")
	jsonPref := familyPreference(ranges, "problem+json", "json")
	if cborPref.q > 0 && cborPref.better(jsonPref) {
		return formatCBOR
	}
	return formatJSON
}
