package formula

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChrisMcGann/MolMass/pkg/elements"
)

// Character sets accepted by the parser. The first set is the only one
// valid for the leading character of a formula.
const (
	leadingChars  = "([{<123456789ABCDEFGHIKLMNOPRSTUVWXYZ_+-"
	trailingChars = "]})>0abcdefghiklmnoprstuy"
)

func validLeading(c byte) bool {
	return strings.IndexByte(leadingChars, c) >= 0
}

func validAnywhere(c byte) bool {
	return strings.IndexByte(leadingChars, c) >= 0 ||
		strings.IndexByte(trailingChars, c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// Parse scans a canonical formula string and returns the number of
// atoms per element symbol and isotope mass number. A mass number of
// zero selects the natural isotopic distribution.
//
// The string is scanned right to left with a stack of parenthesis
// level multipliers, since counts trail the terms they apply to. A
// digit run preceding an element symbol is read as an isotope mass
// number only when it is itself preceded by an opening bracket (or
// starts the formula, as in "13C"); otherwise the digits are part of
// a count.
func Parse(f string) (map[string]map[int]int, error) {
	return parseElements(f, false)
}

func parseElements(f string, allowEmpty bool) (map[string]map[int]int, error) {
	elems := make(map[string]map[int]int)
	if f == "" {
		if allowEmpty {
			return elems, nil
		}
		return nil, newError("empty formula", f, 0)
	}
	if !validLeading(f[0]) {
		return nil, newError(fmt.Sprintf("unexpected character '%c'", f[0]), f, 0)
	}

	ele := ""         // element symbol being accumulated
	num := 0          // pending count
	level := 0        // parenthesis nesting level
	counts := []int{1} // cumulative multiplier per level
	chargeMode := false

	i := len(f)
	for i > 0 {
		i--
		char := f[i]
		if !validAnywhere(char) {
			return nil, newError(fmt.Sprintf("unexpected character '%c'", char), f, i)
		}
		switch {
		case char == '(' || char == '[' || char == '{' || char == '<':
			level--
			if level < 0 || num != 0 {
				return nil, newError("missing closing parenthesis ')]}>'", f, i)
			}
		case char == ')' || char == ']' || char == '}' || char == '>':
			chargeMode = false
			if num == 0 {
				num = 1
			}
			level++
			if level > len(counts)-1 {
				counts = append(counts, 0)
			}
			counts[level] = num * counts[level-1]
			num = 0
		case char == '+' || char == '-':
			chargeMode = true
		case isDigit(char):
			j := i
			for i > 0 && isDigit(f[i-1]) {
				i--
			}
			if chargeMode {
				// digits are the charge magnitude, not a count
				num = 1
			} else {
				num, _ = strconv.Atoi(f[i : j+1])
				if num == 0 {
					return nil, newError("count is zero", f, i)
				}
			}
		case isLower(char):
			if i == 0 || !isUpper(f[i-1]) {
				return nil, newError(fmt.Sprintf("unexpected character '%c'", char), f, i)
			}
			ele = string(char)
		case isUpper(char):
			ele = string(char) + ele
			if num == 0 {
				num = 1
			}
			element, ok := elements.Lookup(ele)
			if !ok {
				return nil, newError(fmt.Sprintf("unknown symbol '%s'", ele), f, i)
			}
			iso := ""
			j := i
			for i > 0 && isDigit(f[i-1]) {
				i--
				iso = string(f[i]) + iso
			}
			if iso != "" && i > 0 && !isOpenBracket(f[i-1]) {
				// digits belong to the preceding term's count
				i = j
				iso = ""
			}
			massnumber := 0
			if iso != "" {
				massnumber, _ = strconv.Atoi(iso)
				if _, ok := element.Isotope(massnumber); !ok {
					return nil, newError(
						fmt.Sprintf("unknown isotope '%d%s'", massnumber, ele), f, i)
				}
			}
			number := num * counts[level]
			if isotopes, ok := elems[ele]; ok {
				isotopes[massnumber] += number
			} else {
				elems[ele] = map[int]int{massnumber: number}
			}
			ele = ""
			num = 0
		}
	}

	if num != 0 {
		return nil, newError("number preceding formula", f, 0)
	}
	if level != 0 {
		return nil, newError("missing opening parenthesis '([{<'", f, 0)
	}
	if len(elems) == 0 && !allowEmpty {
		return nil, newError("invalid formula", f, 0)
	}
	return elems, nil
}

func isOpenBracket(c byte) bool {
	return c == '(' || c == '[' || c == '{' || c == '<'
}
