package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLinkFlags() {
	linkQuery = ""
	linkItem = ""
	linkZoom = ""
	linkGroupBy = ""
	linkCategory = nil
	linkTags = nil
	linkFacets = nil
	linkDecode = ""
}

func TestLinkCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		errMsg   string
		contains []string
		excludes []string
	}{
		{
			name:     "default view encodes to empty string",
			args:     []string{},
			contains: []string{},
		},
		{
			name:     "query and zoom",
			args:     []string{"--query", "envoy", "--zoom", "large"},
			contains: []string{"q=envoy", "zoom=large"},
		},
		{
			name:     "default zoom omitted",
			args:     []string{"--query", "envoy", "--zoom", "default"},
			contains: []string{"q=envoy"},
			excludes: []string{"zoom="},
		},
		{
			name:     "facet values are sorted",
			args:     []string{"--tag", "proxy", "--tag", "mesh"},
			contains: []string{"tags=mesh%2Cproxy"},
		},
		{
			name:     "named facet restriction",
			args:     []string{"--facet", "license=Apache-2.0"},
			contains: []string{"f-license=Apache-2.0"},
		},
		{
			name:    "invalid zoom",
			args:    []string{"--zoom", "enormous"},
			wantErr: true,
			errMsg:  "unknown zoom level",
		},
		{
			name:    "invalid grouping",
			args:    []string{"--group-by", "nonsense"},
			wantErr: true,
			errMsg:  "unknown grouping mode",
		},
		{
			name:    "malformed facet pair",
			args:    []string{"--facet", "license"},
			wantErr: true,
			errMsg:  "invalid facet restriction",
		},
		{
			name:     "decode a query string",
			args:     []string{"--decode", "q=envoy&zoom=large&foo=bar"},
			contains: []string{"query: envoy", "zoom: large"},
			excludes: []string{"foo"},
		},
		{
			name:     "decode surfaces warnings",
			args:     []string{"--decode", "zoom=enormous&q=hello"},
			contains: []string{"query: hello", "warnings:", "unknown zoom level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLinkFlags()
			cmd := NewLinkCommand()

			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)

			output := out.String()
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}

func TestLinkEncodeDecodeRoundTrip(t *testing.T) {
	resetLinkFlags()
	encode := NewLinkCommand()
	var encoded bytes.Buffer
	encode.SetOut(&encoded)
	encode.SetArgs([]string{"--query", "service mesh", "--zoom", "compact", "--tag", "proxy"})
	require.NoError(t, encode.Execute())

	link := strings.TrimSpace(encoded.String())
	require.NotEmpty(t, link)

	resetLinkFlags()
	decode := NewLinkCommand()
	var decoded bytes.Buffer
	decode.SetOut(&decoded)
	decode.SetArgs([]string{"--decode", link})
	require.NoError(t, decode.Execute())

	output := decoded.String()
	assert.Contains(t, output, "query: service mesh")
	assert.Contains(t, output, "zoom: compact")
	assert.Contains(t, output, "proxy")
	assert.NotContains(t, output, "warnings")
}
