package notion

import "time"

// Page property plumbing. One Property struct covers both directions:
// decoders read whichever variant is populated, encoders set exactly one.

type Page struct {
	ID          string              `json:"id"`
	CreatedTime time.Time           `json:"created_time"`
	Archived    bool                `json:"archived"`
	Properties  map[string]Property `json:"properties"`
}

type Properties map[string]Property

type Property struct {
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Email    *string       `json:"email,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	// Pointer so an explicit empty list still encodes (clearing the field).
	MultiSelect *[]SelectOption `json:"multi_select,omitempty"`
	Date        *DateValue      `json:"date,omitempty"`
	Checkbox    *bool           `json:"checkbox,omitempty"`
}

type RichText struct {
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type DateValue struct {
	Start string `json:"start"`
}

// decoders

func (p Page) title(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.Title) == 0 {
		return ""
	}
	if prop.Title[0].PlainText != "" {
		return prop.Title[0].PlainText
	}
	if prop.Title[0].Text != nil {
		return prop.Title[0].Text.Content
	}
	return ""
}

func (p Page) text(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.RichText) == 0 {
		return ""
	}
	if prop.RichText[0].PlainText != "" {
		return prop.RichText[0].PlainText
	}
	if prop.RichText[0].Text != nil {
		return prop.RichText[0].Text.Content
	}
	return ""
}

func (p Page) textPtr(name string) *string {
	if s := p.text(name); s != "" {
		return &s
	}
	return nil
}

func (p Page) email(name string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Email == nil {
		return ""
	}
	return *prop.Email
}

// selectName applies the default-on-missing-field policy: a page without
// the select set decodes to fallback, matching the other backends.
func (p Page) selectName(name, fallback string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Select == nil || prop.Select.Name == "" {
		return fallback
	}
	return prop.Select.Name
}

func (p Page) multiSelect(name string) []string {
	prop, ok := p.Properties[name]
	if !ok || prop.MultiSelect == nil {
		return []string{}
	}
	values := make([]string, 0, len(*prop.MultiSelect))
	for _, opt := range *prop.MultiSelect {
		values = append(values, opt.Name)
	}
	return values
}

func (p Page) date(name string) time.Time {
	prop, ok := p.Properties[name]
	if !ok || prop.Date == nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, prop.Date.Start)
	if err != nil {
		// Date-only properties drop the time component.
		t, err = time.Parse("2006-01-02", prop.Date.Start)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

func (p Page) datePtr(name string) *time.Time {
	t := p.date(name)
	if t.IsZero() {
		return nil
	}
	return &t
}

func (p Page) checkbox(name string) bool {
	prop, ok := p.Properties[name]
	if !ok || prop.Checkbox == nil {
		return false
	}
	return *prop.Checkbox
}

// encoders

func titleProp(value string) Property {
	return Property{Title: []RichText{{Text: &TextContent{Content: value}}}}
}

func textProp(value string) Property {
	return Property{RichText: []RichText{{Text: &TextContent{Content: value}}}}
}

func emailProp(value string) Property {
	return Property{Email: &value}
}

func selectProp(value string) Property {
	return Property{Select: &SelectOption{Name: value}}
}

func multiSelectProp(values []string) Property {
	options := make([]SelectOption, 0, len(values))
	for _, v := range values {
		options = append(options, SelectOption{Name: v})
	}
	return Property{MultiSelect: &options}
}

func dateProp(t time.Time) Property {
	return Property{Date: &DateValue{Start: t.Format(time.RFC3339)}}
}

func checkboxProp(value bool) Property {
	return Property{Checkbox: &value}
}
