package checks

import (
	"regexp"
	"strings"

	"github.com/teranos/precheck/display"
)

var (
	lineComment  = regexp.MustCompile(`//.*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*\*/`)
)

// PrepareText applies the legacy supply alias and strips comments. Block
// comments match greedily from the first /* to the last */, as the
// submission flow always has.
func PrepareText(s string) string {
	s = strings.ReplaceAll(s, TokenLegacySupply, TokenDigitalSupply)
	s = lineComment.ReplaceAllString(s, "")
	return blockComment.ReplaceAllString(s, "")
}

// CheckPower reports, for the netlist and the LEF, whether each supply token
// is present as expected. The analog supply is expected only on 3.3V tiles.
func CheckPower(rep *display.Reporter, verilog, lef string, uses3V3 bool) {
	texts := []struct {
		kind string
		text string
	}{
		{"Verilog", PrepareText(verilog)},
		{"LEF", PrepareText(lef)},
	}
	tokens := []struct {
		name     string
		expected bool
	}{
		{TokenGround, true},
		{TokenDigitalSupply, true},
		{TokenAnalogSupply, uses3V3},
	}

	for _, t := range texts {
		for _, tok := range tokens {
			present := strings.Contains(t.text, tok.name)
			if present != tok.expected {
				rep.Fail("%s contains %s: %s, expected: %s", t.kind, tok.name, pyBool(present), pyBool(tok.expected))
			} else {
				rep.Pass("%s contains %s: %s", t.kind, tok.name, pyBool(present))
			}
		}
	}
}
