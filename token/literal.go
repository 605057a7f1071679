package token

// classify maps a bare word to its token type. Dates are checked
// before floats: `1066.1.1` contains dots but is not numeric.
func classify(w []byte) Type {
	if isDate(w) {
		return TDate
	}
	if isInteger(w) {
		return TInteger
	}
	if isFloat(w) {
		return TFloat
	}
	switch string(w) {
	case "yes", "no":
		return TBool
	}
	return TLiteral
}

// isDate reports whether w is a date literal: three dot-separated
// runs of digits (YYYY.MM.DD).
func isDate(w []byte) bool {
	parts := 0
	digits := 0
	for _, c := range w {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			if digits == 0 {
				return false
			}
			parts++
			digits = 0
		default:
			return false
		}
	}
	return parts == 2 && digits > 0
}

func isInteger(w []byte) bool {
	i := 0
	if len(w) > 0 && (w[0] == '-' || w[0] == '+') {
		i = 1
	}
	if i == len(w) {
		return false
	}
	for ; i < len(w); i++ {
		if w[i] < '0' || w[i] > '9' {
			return false
		}
	}
	return true
}

func isFloat(w []byte) bool {
	i := 0
	if len(w) > 0 && (w[0] == '-' || w[0] == '+') {
		i = 1
	}
	digits, dots := 0, 0
	for ; i < len(w); i++ {
		switch {
		case w[i] >= '0' && w[i] <= '9':
			digits++
		case w[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots == 1
}
