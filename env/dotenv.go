package env

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

func loadDotenv(path string) (map[string]any, error) {
	vs := map[string]any{}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, _ := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		v = unquote(strings.TrimSpace(v))
		if v == "" {
			vs[k] = true
		} else {
			vs[k] = v
		}
	}
	return vs, nil
}

func loadDotenvToml(path string) (map[string]any, error) {
	vs := map[string]any{}
	_, err := toml.DecodeFile(path, &vs)
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// LoadDotenv looks up .env and related files in the current directory and the in parent directories.
func LoadDotenv() map[string]any {
	wd, err := os.Getwd()
	if err != nil {
		return map[string]any{}
	}
	return LoadDotenvFrom(wd)
}

// LoadDotenvFrom looks up .env and related files in dir and in its parent directories.
// Existing values are not overwritten by higher level files.
// Filenames considered are ".env" (usual .env files ), ".env.toml" (decoded as toml), where ".env" is evaluated before ".env.toml"
func LoadDotenvFrom(dir string) map[string]any {
	all := map[string]any{}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return all
	}

	const (
		dotEnvFile     = ".env"
		dotEnvFileToml = ".env.toml"
	)
	for {
		if vs, err := loadDotenv(filepath.Join(dir, dotEnvFile)); err == nil {
			merge(vs, all)
		}
		if vs, err := loadDotenvToml(filepath.Join(dir, dotEnvFileToml)); err == nil {
			merge(vs, all)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			//done
			break
		}
		dir = parent
	}
	return all
}
