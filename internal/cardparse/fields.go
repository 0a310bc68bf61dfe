package cardparse

// Field names a parsed business card field; values match the card JSON keys
type Field string

const (
	FieldName       Field = "name"
	FieldNameKana   Field = "name_kana"
	FieldCompany    Field = "company"
	FieldDepartment Field = "department"
	FieldPosition   Field = "position"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldMobile     Field = "mobile"
	FieldFax        Field = "fax"
	FieldPostalCode Field = "postal_code"
	FieldAddress    Field = "address"
	FieldWebsite    Field = "website"
)

// AllFields lists every field in display order
var AllFields = []Field{
	FieldName, FieldNameKana, FieldCompany, FieldDepartment, FieldPosition,
	FieldEmail, FieldPhone, FieldMobile, FieldFax, FieldPostalCode, FieldAddress, FieldWebsite,
}

// scoreWeights задает вклад поля в общий Score
var scoreWeights = map[Field]float64{
	FieldName:       2,
	FieldCompany:    2,
	FieldEmail:      1.5,
	FieldPhone:      1.5,
	FieldPosition:   1,
	FieldDepartment: 1,
	FieldAddress:    1,
	FieldNameKana:   0.5,
	FieldMobile:     0.5,
	FieldFax:        0.5,
	FieldPostalCode: 0.5,
	FieldWebsite:    0.5,
}

// ConfidenceLevel is a coarse bucket of a field confidence
type ConfidenceLevel string

const (
	LevelHigh   ConfidenceLevel = "high"
	LevelMedium ConfidenceLevel = "medium"
	LevelLow    ConfidenceLevel = "low"
)

// LevelOf buckets a confidence: high from 0.8, medium from 0.5
func LevelOf(confidence float64) ConfidenceLevel {
	switch {
	case confidence >= 0.8:
		return LevelHigh
	case confidence >= 0.5:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Fields is the result of parsing OCR text of a business card
type Fields struct {
	Confidence map[Field]float64 `json:"confidence"`
	Name       string            `json:"name"`
	NameKana   string            `json:"name_kana"`
	Company    string            `json:"company"`
	Department string            `json:"department"`
	Position   string            `json:"position"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Mobile     string            `json:"mobile"`
	Fax        string            `json:"fax"`
	PostalCode string            `json:"postal_code"`
	Address    string            `json:"address"`
	Website    string            `json:"website"`
	Unparsed   []string          `json:"unparsed,omitempty"`
}

// Get returns the value of field
func (f *Fields) Get(field Field) string {
	if p := f.ptr(field); p != nil {
		return *p
	}
	return ""
}

// Level returns the confidence level of field
func (f *Fields) Level(field Field) ConfidenceLevel {
	return LevelOf(f.Confidence[field])
}

// Levels returns confidence levels of every non-empty field
func (f *Fields) Levels() map[Field]ConfidenceLevel {
	levels := make(map[Field]ConfidenceLevel, len(f.Confidence))
	for field, c := range f.Confidence {
		if f.Get(field) != "" {
			levels[field] = LevelOf(c)
		}
	}
	return levels
}

// Found returns the number of non-empty fields
func (f *Fields) Found() int {
	n := 0
	for _, field := range AllFields {
		if f.Get(field) != "" {
			n++
		}
	}
	return n
}

// Score aggregates field confidences into 0..1, weighting the fields a card
// is identified by (name, company, email, phone) higher
func (f *Fields) Score() float64 {
	var sum, total float64
	for _, field := range AllFields {
		w := scoreWeights[field]
		total += w
		if f.Get(field) != "" {
			sum += w * f.Confidence[field]
		}
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// set assigns value when field is empty; reports whether it did
func (f *Fields) set(field Field, value string, confidence float64) bool {
	p := f.ptr(field)
	if p == nil || *p != "" || value == "" {
		return false
	}
	*p = value
	f.Confidence[field] = confidence
	return true
}

func (f *Fields) ptr(field Field) *string {
	switch field {
	case FieldName:
		return &f.Name
	case FieldNameKana:
		return &f.NameKana
	case FieldCompany:
		return &f.Company
	case FieldDepartment:
		return &f.Department
	case FieldPosition:
		return &f.Position
	case FieldEmail:
		return &f.Email
	case FieldPhone:
		return &f.Phone
	case FieldMobile:
		return &f.Mobile
	case FieldFax:
		return &f.Fax
	case FieldPostalCode:
		return &f.PostalCode
	case FieldAddress:
		return &f.Address
	case FieldWebsite:
		return &f.Website
	default:
		return nil
	}
}
