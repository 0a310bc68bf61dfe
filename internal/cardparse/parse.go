// Package cardparse extracts contact fields from the OCR text of a business
// card. Parsing is heuristic: every line is matched against patterns in a
// fixed priority order and the first field that accepts it wins.
package cardparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	phoneRe = regexp.MustCompile(
		`(?:\+\d{1,3}[-\s.]?\(?0?\)?\d{1,4}|\(\d{1,4}\)|\d{2,4})[-\s.]?\d{1,4}[-\s.]?\d{3,4}`)
	phoneLabelRe = regexp.MustCompile(
		`(?i)(tel|phone|電話|fax|ファックス|ファクス|携帯|mobile|mob|cell|\b[tfm]\s*[.:])`)

	postalRe = regexp.MustCompile(`(?:^|[^\d-])(\d{3})\s*[-‐‑–ー]\s*(\d{4})(?:[^\d-]|$)`)

	websiteRe = regexp.MustCompile(
		`(?i)(https?://\S+|www\.\S+|[a-z0-9-]+(?:\.[a-z0-9-]+)*\.(?:com|net|org|jp|io|dev|biz|info)(?:/\S*)?)`)

	companyJaRe = regexp.MustCompile(
		`株式会社|有限会社|合同会社|合資会社|合名会社|一般社団法人|一般財団法人|公益社団法人|公益財団法人|\(株\)|㈱|\(有\)|㈲`)
	companyEnRe = regexp.MustCompile(
		`(?i)\b(?:corporation|corp\.?|incorporated|inc\.?|limited|ltd\.?|co\.,?\s*ltd\.?|company|llc|gmbh|k\.k\.|holdings)(?:\W|$)`)

	positionJaRe = regexp.MustCompile(
		`代表取締役|取締役|執行役員|副社長|社長|会長|専務|常務|本部長|部長|次長|課長|係長|主任|主査|室長|所長|支店長|センター長|マネージャー|マネジャー|リーダー|エンジニア|デザイナー|コンサルタント|顧問|監査役`)
	positionEnRe = regexp.MustCompile(
		`(?i)\b(?:manager|director|president|ceo|cto|cio|cfo|coo|founder|engineer|developer|designer|consultant|representative|chairman|partner|officer|head of|specialist|analyst|architect|secretary)\b`)

	departmentJaRe = regexp.MustCompile(`^.{2,}(?:部|課|室|局|センター|グループ|チーム)$`)
	departmentEnRe = regexp.MustCompile(
		`(?i)\b(?:division|department|dept\.?|section|group|team|bureau|laboratory)(?:\W|$)`)

	prefectureRe    = regexp.MustCompile(`東京都|北海道|大阪府|京都府|\p{Han}{2,3}県`)
	municipalityRe  = regexp.MustCompile(`\p{Han}+[市区町村郡]`)
	addressDetailRe = regexp.MustCompile(`\d|丁目|番地|番|号`)
	streetRe        = regexp.MustCompile(
		`(?i)\d+\s+[a-z0-9 .'-]+\s(?:street|st\.?|avenue|ave\.?|road|rd\.?|boulevard|blvd\.?|lane|ln\.?|drive|dr\.?|suite|floor)(?:\W|$)`)
	cityStateZipRe = regexp.MustCompile(`^[A-Z][a-zA-Z .]+,\s*[A-Z]{2}\s+\d{5}(?:-\d{4})?$`)
	buildingRe     = regexp.MustCompile(`(?i)ビル|階|タワー|号室|\d+f\b|bldg|building|floor|suite|tower`)

	nameExcludeRe = regexp.MustCompile(`株式会社|有限会社|(?i:\b(?:corporation|corp|inc|ltd)\b)|@|[\d\-()]{6,}`)
	nameJaRe      = regexp.MustCompile(`^\p{Han}{1,4}\s?[\p{Han}\p{Hiragana}\p{Katakana}]{1,5}$`)
	nameEnRe      = regexp.MustCompile(`^[A-Z][a-zA-Z'.-]+(?:\s+[A-Z][a-zA-Z'.-]*){1,2}$`)
	kanaRe        = regexp.MustCompile(`^[\p{Hiragana}\p{Katakana}ー・\s]+$`)

	labelRe = regexp.MustCompile(`(?i)^(?:住所|所在地|address|addr\.?|url|web|hp|e-?mail)\s*[:：]?\s*`)
)

// mobilePrefixes are Japanese mobile number prefixes
var mobilePrefixes = []string{"070", "080", "090", "8170", "8180", "8190"}

type parser struct {
	fields Fields
}

// Parse extracts fields from OCR text
func Parse(text string) Fields {
	p := &parser{fields: Fields{Confidence: make(map[Field]float64)}}

	lines := splitLines(text)
	used := make([]bool, len(lines))

	var last Field
	for i, line := range lines {
		last = p.line(i, line, last)
		used[i] = last != ""
	}

	// Компания не найдена: берем первую содержательную строку
	if p.fields.Company == "" {
		for i, line := range lines {
			if used[i] || utf8.RuneCountInString(line) <= 3 || strings.ContainsAny(line, "@0123456789-()") {
				continue
			}
			p.fields.set(FieldCompany, line, 0.4)
			used[i] = true
			break
		}
	}

	for i, line := range lines {
		if !used[i] {
			p.fields.Unparsed = append(p.fields.Unparsed, line)
		}
	}

	return p.fields
}

// line classifies one line and returns the field it was assigned to, or ""
func (p *parser) line(index int, line string, last Field) Field {
	f := &p.fields

	if email := emailRe.FindString(line); email != "" && f.set(FieldEmail, email, 0.95) {
		return FieldEmail
	}

	if p.phones(line) {
		return FieldPhone
	}

	if field := p.postal(line); field != "" {
		return field
	}

	if !strings.Contains(line, "@") {
		if site := websiteRe.FindString(stripLabel(line)); site != "" && f.set(FieldWebsite, site, 0.85) {
			return FieldWebsite
		}
	}

	// Продолжение адреса: название здания на отдельной строке
	if last == FieldAddress && buildingRe.MatchString(line) {
		f.Address += " " + line
		return FieldAddress
	}

	if companyJaRe.MatchString(line) {
		f.set(FieldCompany, line, 0.9)
		return FieldCompany
	}
	if companyEnRe.MatchString(line) {
		f.set(FieldCompany, line, 0.85)
		return FieldCompany
	}

	if confidence, ok := addressConfidence(line); ok {
		p.appendAddress(stripLabel(line), confidence)
		return FieldAddress
	}

	if positionJaRe.MatchString(line) || positionEnRe.MatchString(line) {
		p.position(line)
		return FieldPosition
	}

	if isDepartment(line) {
		f.set(FieldDepartment, line, 0.8)
		return FieldDepartment
	}

	if kanaRe.MatchString(line) && f.Name != "" && utf8.RuneCountInString(line) >= 2 {
		if f.set(FieldNameKana, line, 0.7) {
			return FieldNameKana
		}
	}

	if index < 3 && f.Name == "" && !nameExcludeRe.MatchString(line) {
		n := utf8.RuneCountInString(line)
		if n >= 2 && n <= 20 {
			confidence := 0.55
			if nameJaRe.MatchString(line) || nameEnRe.MatchString(line) {
				confidence = 0.8
			}
			f.set(FieldName, line, confidence)
			return FieldName
		}
	}

	return ""
}

// phones assigns every phone number of the line to phone, mobile or fax
// according to the label in front of it
func (p *parser) phones(line string) bool {
	matches := phoneRe.FindAllStringIndex(line, -1)
	if len(matches) == 0 {
		return false
	}
	labels := phoneLabelRe.FindAllStringIndex(line, -1)

	assigned := false
	prevEnd := 0
	for _, m := range matches {
		number := strings.TrimSpace(line[m[0]:m[1]])
		digits := digitsOnly(number)
		if len(digits) < 10 {
			prevEnd = m[1]
			continue
		}

		label := ""
		for _, l := range labels {
			if l[1] <= m[0] && l[0] >= prevEnd {
				label = strings.ToLower(line[l[0]:l[1]])
			}
		}
		prevEnd = m[1]

		field, confidence := phoneField(label, digits)
		if p.fields.set(field, number, confidence) {
			assigned = true
			continue
		}
		// Без метки второй номер идет в следующее свободное поле
		if label == "" {
			for _, alt := range []Field{FieldPhone, FieldMobile} {
				if p.fields.set(alt, number, confidence) {
					assigned = true
					break
				}
			}
		}
	}

	return assigned
}

func phoneField(label, digits string) (Field, float64) {
	switch {
	case strings.Contains(label, "fax") || strings.Contains(label, "ファ") || strings.HasPrefix(label, "f"):
		return FieldFax, 0.9
	case strings.Contains(label, "携帯") || strings.Contains(label, "mob") ||
		strings.Contains(label, "cell") || strings.HasPrefix(label, "m"):
		return FieldMobile, 0.9
	case label != "":
		return FieldPhone, 0.9
	}

	for _, prefix := range mobilePrefixes {
		if strings.HasPrefix(digits, prefix) {
			return FieldMobile, 0.75
		}
	}
	return FieldPhone, 0.75
}

// postal extracts a postal code; the rest of the line may be an address
func (p *parser) postal(line string) Field {
	m := postalRe.FindStringSubmatchIndex(line)
	if m == nil {
		return ""
	}

	hasMark := strings.Contains(line, "〒") || strings.Contains(strings.ToLower(line), "zip")
	rest := strings.TrimSpace(strings.ReplaceAll(line[:m[2]]+line[m[5]:], "〒", ""))
	rest = strings.TrimSpace(stripLabel(rest))

	confidence, isAddress := addressConfidence(rest)
	if !hasMark && !isAddress && rest != "" {
		return ""
	}

	postalConfidence := 0.75
	if hasMark {
		postalConfidence = 0.9
	}
	p.fields.set(FieldPostalCode, line[m[2]:m[3]]+"-"+line[m[4]:m[5]], postalConfidence)

	if isAddress {
		p.appendAddress(rest, confidence)
		return FieldAddress
	}
	return FieldPostalCode
}

// position assigns the title; a department written on the same line
// ("営業部 部長") goes to department
func (p *parser) position(line string) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		p.fields.set(FieldPosition, line, 0.85)
		return
	}

	var titles, departments []string
	for _, token := range tokens {
		if isDepartment(token) && !positionJaRe.MatchString(token) {
			departments = append(departments, token)
			continue
		}
		titles = append(titles, token)
	}

	if len(departments) > 0 && len(titles) > 0 {
		p.fields.set(FieldDepartment, strings.Join(departments, " "), 0.75)
		p.fields.set(FieldPosition, strings.Join(titles, " "), 0.85)
		return
	}
	p.fields.set(FieldPosition, line, 0.85)
}

func (p *parser) appendAddress(value string, confidence float64) {
	if value == "" {
		return
	}
	if p.fields.Address == "" {
		p.fields.set(FieldAddress, value, confidence)
		return
	}
	p.fields.Address += " " + value
}

// addressConfidence reports whether line looks like an address
func addressConfidence(line string) (float64, bool) {
	switch {
	case line == "":
		return 0, false
	case prefectureRe.MatchString(line):
		return 0.9, true
	case municipalityRe.MatchString(line) && addressDetailRe.MatchString(line):
		return 0.75, true
	case streetRe.MatchString(line):
		return 0.75, true
	case cityStateZipRe.MatchString(line):
		return 0.7, true
	}
	return 0, false
}

func isDepartment(line string) bool {
	if departmentEnRe.MatchString(line) {
		return true
	}
	for _, token := range strings.Fields(line) {
		if departmentJaRe.MatchString(token) {
			return true
		}
	}
	return false
}

func stripLabel(line string) string {
	return labelRe.ReplaceAllString(line, "")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitLines normalizes full-width ASCII and spaces, then returns trimmed
// non-empty lines
func splitLines(text string) []string {
	text = width.Fold.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := collapseSpacedCJK(strings.Join(strings.Fields(raw), " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// collapseSpacedCJK joins lines OCR emitted as single CJK characters
// separated by spaces ("株 式 会 社 サ ン プ ル")
func collapseSpacedCJK(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return line
	}
	for _, t := range tokens {
		r, size := utf8.DecodeRuneInString(t)
		if size != len(t) || !isCJK(r) {
			return line
		}
	}
	return strings.Join(tokens, "")
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) || r == 'ー'
}
