package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-radio-playlist/pkg/types"
)

func samplePlaylist() types.Playlist {
	date := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)
	return types.Playlist{
		{Time: "08:00", Title: "Song A", Artist: "Artist A", Date: date},
		{Time: "08:04", Title: "Hello, World", Artist: "Artist \"B\"", Date: date},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"table", FormatTable, false},
		{"CSV", FormatCSV, false},
		{" csv ", FormatCSV, false},
		{"json", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePlaylist(), FormatCSV))

	expected := "Time,Title,Artist,Date\n" +
		"08:00,Song A,Artist A,2023-05-01\n" +
		"08:04,\"Hello, World\",\"Artist \"\"B\"\"\",2023-05-01\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Time,Title,Artist,Date\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePlaylist(), FormatTable))

	out := buf.String()
	for _, want := range []string{"Time", "Title", "Artist", "Date", "08:00", "Song A", "Hello, World", "2023-05-01"} {
		assert.Contains(t, out, want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, samplePlaylist(), Format("xml")))
	assert.Empty(t, buf.String())
}
