package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "storefront.db", "-x", "1"},
			allowedFlags: []string{"-d", "--db"},
			want:         []string{"-d", "storefront.db"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--db=alt.db", "-x", "1"},
			allowedFlags: []string{"-d", "--db"},
			want:         []string{"--db=alt.db"},
		},
		{
			name:         "both short and long present, preserve order",
			args:         []string{"--db=first.db", "-d", "second.db", "-x", "1"},
			allowedFlags: []string{"-d", "--db"},
			want:         []string{"--db=first.db", "-d", "second.db"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-d", "--db"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-d"},
			allowedFlags: []string{"-d", "--db"},
			want:         []string{"-d"},
		},
		{
			name:         "flag followed by another flag (no value)",
			args:         []string{"-d", "-notvalue"},
			allowedFlags: []string{"-d", "--db"},
			want:         []string{"-d"},
		},
		{
			name:         "value that looks like a flag but with equals form",
			args:         []string{"--db=--weird.db"},
			allowedFlags: []string{"--db"},
			want:         []string{"--db=--weird.db"},
		},
		{
			name:         "multiple allowed flags kept",
			args:         []string{"-a", "http://127.0.0.1:4000/graphql", "-d", "storefront.db", "--other", "x"},
			allowedFlags: []string{"-d", "-a"},
			want:         []string{"-a", "http://127.0.0.1:4000/graphql", "-d", "storefront.db"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-d", "--db"},
			want:         []string{},
		},
		{
			name:         "path with spaces remains single arg",
			args:         []string{"-d", "/home/user/storefront state.db"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "/home/user/storefront state.db"},
		},
		{
			name:         "do not treat next dash-starting token as value",
			args:         []string{"-d", "--db=alt.db"},
			allowedFlags: []string{"-d", "--db"},
			want:         []string{"-d", "--db=alt.db"},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-d", "one.db", "-d", "two.db"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "one.db", "-d", "two.db"},
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

func Test_jsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"storefront", "-c", "/etc/storefront/short.json"}
		assert.Equal(t, "/etc/storefront/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"storefront", "-config", "/etc/storefront/long.json"}
		assert.Equal(t, "/etc/storefront/long.json", JsonConfigFlags())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"storefront", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"storefront", "-c", "/etc/storefront/1.json", "-config", "/etc/storefront/2.json"}
		assert.Equal(t, "/etc/storefront/2.json", JsonConfigFlags())
	})
}
