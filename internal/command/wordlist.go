package command

import (
	"strconv"
	"strings"
	"time"
)

// Charset enumerates the character sets crunch can generate from.
type Charset string

const (
	CharsetLower       Charset = "lower"
	CharsetUpper       Charset = "upper"
	CharsetMixed       Charset = "mixed"
	CharsetDigits      Charset = "digits"
	CharsetLowerDigits Charset = "lower-digits"
	CharsetUpperDigits Charset = "upper-digits"
	CharsetAlnum       Charset = "alnum"
	CharsetCustom      Charset = "custom"
)

var charsets = map[Charset]string{
	CharsetLower:       "abcdefghijklmnopqrstuvwxyz",
	CharsetUpper:       "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	CharsetMixed:       "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
	CharsetDigits:      "0123456789",
	CharsetLowerDigits: "abcdefghijklmnopqrstuvwxyz0123456789",
	CharsetUpperDigits: "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
	CharsetAlnum:       "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
}

// patternPlaceholders are the crunch -t placeholder characters:
// @ lowercase, , uppercase, % digits, ^ symbols.
const patternPlaceholders = "@,%^"

// WordlistOptions configures a crunch wordlist generation job.
type WordlistOptions struct {
	MinLength int
	MaxLength int
	Charset   Charset
	// CustomCharset supplies the literal characters when Charset is
	// CharsetCustom.
	CustomCharset string
	// Pattern is an optional crunch -t template. When set, its length
	// must equal both MinLength and MaxLength.
	Pattern    string
	OutputFile string
	Permute    bool
	Invert     bool
	Timeout    time.Duration
}

func (o WordlistOptions) Family() Family { return FamilyWordlist }

func (o WordlistOptions) Build() (Spec, error) {
	if o.MinLength < 1 || o.MaxLength > 64 || o.MinLength > o.MaxLength {
		return Spec{}, invalidf("length range %d-%d is out of bounds", o.MinLength, o.MaxLength)
	}
	if o.OutputFile == "" {
		return Spec{}, invalidf("output file is required")
	}

	charset, known := charsets[o.Charset]
	switch {
	case o.Charset == CharsetCustom:
		if o.CustomCharset == "" {
			return Spec{}, invalidf("custom charset selected but no characters given")
		}
		charset = o.CustomCharset
	case !known:
		return Spec{}, invalidf("unknown charset %q", o.Charset)
	}

	if o.Pattern != "" {
		if len(o.Pattern) != o.MinLength || len(o.Pattern) != o.MaxLength {
			return Spec{}, invalidf("pattern length %d must match length range %d-%d",
				len(o.Pattern), o.MinLength, o.MaxLength)
		}
		if !strings.ContainsAny(o.Pattern, patternPlaceholders) {
			return Spec{}, invalidf("pattern %q contains no placeholder characters", o.Pattern)
		}
	}

	args := []string{
		strconv.Itoa(o.MinLength),
		strconv.Itoa(o.MaxLength),
		charset,
		"-o", o.OutputFile,
	}
	if o.Pattern != "" {
		args = append(args, "-t", o.Pattern)
	}
	if o.Invert {
		args = append(args, "-i")
	}
	if o.Permute {
		args = append(args, "-p")
	}

	return Spec{
		Tool:       string(FamilyWordlist),
		Args:       args,
		Timeout:    o.Timeout,
		Stream:     true,
		ResultFile: o.OutputFile,
	}, nil
}
