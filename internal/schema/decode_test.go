package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCluster(t *testing.T) {
	doc, err := Load("testdata/basic.xml")
	require.NoError(t, err)
	require.NotNil(t, doc.Cluster)
	assert.Equal(t, "testdata/basic.xml", doc.Path)

	c := doc.Cluster
	assert.Equal(t, "Basic", c.Name)
	assert.Equal(t, "0x0000", c.Code)
	require.Len(t, c.Commands, 1)

	cmd := c.Commands[0]
	assert.Equal(t, "Reset To Factory Defaults Command", cmd.Name)
	assert.Equal(t, "0x00", cmd.Code)
	assert.Equal(t, "client", cmd.Source)
	assert.Len(t, cmd.Description, 2)

	require.Len(t, c.Attributes, 2)
	assert.Equal(t, Attribute{
		Name:        "ZCL Version",
		Type:        "UNSIGNED_8_BIT_INTEGER",
		Code:        "0x0000",
		Writable:    false,
		Description: []string{"The ZCLVersion attribute is 8 bits in length and specifies the version number of the ZigBee Cluster Library that all clusters on this endpoint conform to."},
	}, c.Attributes[0])
	assert.True(t, c.Attributes[1].Writable)

	require.Len(t, c.Constants, 1)
	set := c.Constants[0]
	assert.Equal(t, "PowerSourceEnum", set.Class)
	assert.Equal(t, []ConstantValue{
		{Name: "Unknown", Code: "0x00"},
		{Name: "Mains Single Phase", Code: "0x01"},
		{Name: "Mains Three Phase", Code: "0x02"},
	}, set.Values)
}

func TestLoadConstants(t *testing.T) {
	doc, err := Load("testdata/constants.xml")
	require.NoError(t, err)
	assert.Nil(t, doc.Cluster)
	require.Len(t, doc.Constants, 1)
	assert.Equal(t, "ZigBeeProfileTypeEnum", doc.Constants[0].Class)
	assert.Equal(t, []string{"Profile identifiers used by the stack."}, doc.Constants[0].Description)
	assert.Len(t, doc.Constants[0].Values, 2)
}

func TestDecodeClusterRejectsConstants(t *testing.T) {
	_, err := DecodeCluster(strings.NewReader(`<zigbee></zigbee>`))
	assert.Error(t, err)

	_, err = DecodeConstants(strings.NewReader(`<cluster code="0x0006"><name>On/Off</name></cluster>`))
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty", input: "", wantErr: "empty schema document"},
		{name: "unknown root", input: "<protocol/>", wantErr: "unsupported root element"},
		{name: "missing name", input: `<cluster code="0x0006"></cluster>`, wantErr: "missing name"},
		{name: "missing code", input: `<cluster><name>On/Off</name></cluster>`, wantErr: "missing code"},
		{
			name:    "bad writable",
			input:   `<cluster code="0x0006"><name>On/Off</name><attribute code="0x0000" type="BOOLEAN" writable="yes"><name>On Off</name></attribute></cluster>`,
			wantErr: "invalid writable",
		},
		{name: "malformed", input: `<cluster code="0x0006"><name>`, wantErr: "parsing cluster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDescriptionLines(t *testing.T) {
	got := descriptionLines([]string{"  first line\n\n   second line  ", "", "first line"})
	assert.Equal(t, []string{"first line", "second line", "first line"}, got)
}

func TestParseSource(t *testing.T) {
	s, err := ParseSource("client")
	require.NoError(t, err)
	assert.Equal(t, SourceClient, s)

	s, err = ParseSource("server")
	require.NoError(t, err)
	assert.Equal(t, SourceServer, s)

	_, err = ParseSource("both")
	assert.ErrorIs(t, err, ErrUnrecognizedSource)
	_, err = ParseSource("")
	assert.ErrorIs(t, err, ErrUnrecognizedSource)
}
