package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The CLI parses its flags in two independent passes: the config file path
// (-c/-config) first, then the overrides (-a, -d, -t). FilterArgs is what
// keeps each pass blind to the other's flags, so the cases below are phrased
// in terms of the real command line.
func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "config pass ignores override flags",
			args:         []string{"-a", "http://api.local/api", "-c", "jobdesk.json", "-t", "30"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "jobdesk.json"},
		},
		{
			name:         "override pass ignores the config flag",
			args:         []string{"-c", "jobdesk.json", "-a", "http://api.local/api", "-d", "state.db"},
			allowedFlags: []string{"-a", "-d", "-t"},
			want:         []string{"-a", "http://api.local/api", "-d", "state.db"},
		},
		{
			name:         "equals form is kept whole",
			args:         []string{"--config=alt.json", "-a", "http://api.local/api"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "jobs"},
			allowedFlags: []string{"-a", "-d", "-t"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-d"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "dash-starting token is not consumed as a value",
			args:         []string{"-a", "-t", "30"},
			allowedFlags: []string{"-a", "-t"},
			want:         []string{"-a", "-t", "30"},
		},
		{
			name:         "all three override flags survive together",
			args:         []string{"-a", "http://api.local/api", "-d", "/tmp/jobdesk.db", "-t", "5", "--other", "x"},
			allowedFlags: []string{"-a", "-d", "-t"},
			want:         []string{"-a", "http://api.local/api", "-d", "/tmp/jobdesk.db", "-t", "5"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-a", "-d", "-t"},
			want:         []string{},
		},
		{
			name:         "value containing spaces stays a single arg",
			args:         []string{"-d", "/home/user/job desk.db"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "/home/user/job desk.db"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-a", "http://one/api", "-a", "http://two/api"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "http://one/api", "-a", "http://two/api"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"jobdesk", "-c", "/etc/jobdesk/config.json"}
		assert.Equal(t, "/etc/jobdesk/config.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"jobdesk", "-config", "/etc/jobdesk/config.json"}
		assert.Equal(t, "/etc/jobdesk/config.json", JsonConfigFlags())
	})

	t.Run("no config flag yields empty path", func(t *testing.T) {
		os.Args = []string{"jobdesk", "-a", "http://api.local/api", "-t", "30"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("both forms given, last one wins", func(t *testing.T) {
		os.Args = []string{"jobdesk", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}
