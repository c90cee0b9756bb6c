package notion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageDecoders(t *testing.T) {
	page := Page{
		Properties: map[string]Property{
			"Name":       titleProp("Ana Pratiwi"),
			"Email":      emailProp("ana@company.test"),
			"Role":       selectProp("app_admin"),
			"Justif":     textProp("Sprint board access"),
			"Admins":     multiSelectProp([]string{"budi@company.test"}),
			"Join Date":  dateProp(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)),
			"Automated":  checkboxProp(true),
			"Empty List": multiSelectProp([]string{}),
		},
	}

	assert.Equal(t, "Ana Pratiwi", page.title("Name"))
	assert.Equal(t, "ana@company.test", page.email("Email"))
	assert.Equal(t, "app_admin", page.selectName("Role", "employee"))
	assert.Equal(t, "Sprint board access", page.text("Justif"))
	assert.Equal(t, []string{"budi@company.test"}, page.multiSelect("Admins"))
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), page.date("Join Date"))
	assert.True(t, page.checkbox("Automated"))
	assert.Empty(t, page.multiSelect("Empty List"))
}

func TestPageDecoders_MissingProperties(t *testing.T) {
	page := Page{Properties: map[string]Property{}}

	assert.Equal(t, "", page.title("Name"))
	assert.Equal(t, "employee", page.selectName("Role", "employee"))
	assert.Nil(t, page.textPtr("Invited By"))
	assert.Nil(t, page.datePtr("Offboard Date"))
	assert.Empty(t, page.multiSelect("Admins"))
	assert.False(t, page.checkbox("Automated"))
	assert.True(t, page.date("Join Date").IsZero())
}

func TestPageDate_DateOnlyFallback(t *testing.T) {
	page := Page{Properties: map[string]Property{
		"Join Date": {Date: &DateValue{Start: "2024-01-08"}},
	}}
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), page.date("Join Date"))
}

func TestMultiSelectProp_EmptyStillEncodes(t *testing.T) {
	encoded, err := json.Marshal(multiSelectProp([]string{}))
	require.NoError(t, err)
	// An empty option list must survive encoding so updates can clear
	// the field; omitempty on a plain slice would drop it.
	assert.JSONEq(t, `{"multi_select":[]}`, string(encoded))
}

func TestProperty_RoundTrip(t *testing.T) {
	encoded, err := json.Marshal(titleProp("Jira"))
	require.NoError(t, err)

	var decoded Property
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	page := Page{Properties: map[string]Property{"Name": decoded}}
	assert.Equal(t, "Jira", page.title("Name"))
}
