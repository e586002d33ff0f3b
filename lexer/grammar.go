package lexer

// ScanTextBody consumes the characters between two quotes. At least one
// character is required.
func ScanTextBody(s *Scanner) error {
	if _, err := s.AcceptIf(IsNotQuote); err != nil {
		return err
	}
	s.SkipWhile(IsNotQuote)
	return nil
}

// ScanOptionalTextBody is like ScanTextBody but also matches an empty body.
func ScanOptionalTextBody(s *Scanner) error {
	s.SkipWhile(IsNotQuote)
	return nil
}

// ScanInteger consumes one or more decimal digits.
func ScanInteger(s *Scanner) error {
	if _, err := s.AcceptIf(IsDigit); err != nil {
		return err
	}
	s.SkipWhile(IsDigit)
	return nil
}

// ScanFloat consumes digits, a period and digits. Both sides of the period
// are mandatory.
func ScanFloat(s *Scanner) error {
	if err := ScanInteger(s); err != nil {
		return err
	}
	if _, err := s.AcceptIf(IsPeriod); err != nil {
		return err
	}
	return ScanInteger(s)
}

// ScanSymbol consumes a run of symbol characters.
func ScanSymbol(s *Scanner) error {
	if _, err := s.AcceptIf(IsSymbol); err != nil {
		return err
	}
	s.SkipWhile(IsSymbol)
	return nil
}

// ScanWord consumes a run of anything but whitespace. Quotes and parens are
// taken as part of the word.
func ScanWord(s *Scanner) error {
	if _, err := s.AcceptIf(IsNotWhitespace); err != nil {
		return err
	}
	s.SkipWhile(IsNotWhitespace)
	return nil
}
