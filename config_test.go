package tudat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danvip10/tudat/parsed"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	conf, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if conf.CollectAll || conf.SkipInvalid {
		t.Fatal("fail fast extraction should be the default")
	}
	if len(conf.Columns) != 7 || conf.Columns[0] != parsed.Epoch || conf.Columns[6] != parsed.CartesianZVelocity {
		t.Fatalf("invalid default columns %v", conf.Columns)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	toml := `[extract]
collect_all = true
skip_invalid = true
columns = ["x", "y", "z", "vx", "vy", "vz", "epoch"]
`
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigEnv, dir)
	conf, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if !conf.CollectAll || !conf.SkipInvalid {
		t.Fatalf("invalid config %+v", conf)
	}
	if conf.Columns[0] != parsed.CartesianXCoordinate || conf.Columns[6] != parsed.Epoch {
		t.Fatalf("invalid columns %v", conf.Columns)
	}
	if conf.LogLevel != "info" {
		t.Fatalf("default log level not used: %s", conf.LogLevel)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("missing conf.toml should fail")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte("[extract]\ncolumns = [\"x\", \"w\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("unknown column should fail")
	}
}
