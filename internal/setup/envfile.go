package setup

import (
	"fmt"
	"os"
	"strings"
)

// readEnvFile parses KEY=VALUE lines from an env file.
// Missing files yield an empty map. Comments and blank lines are skipped,
// surrounding quotes on values are removed.
func readEnvFile(path string) map[string]string {
	env := make(map[string]string)

	content, err := os.ReadFile(path)
	if err != nil {
		return env
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		env[strings.TrimSpace(key)] = value
	}

	return env
}

// upsertEnvValue sets key to value in env-file content, replacing an
// existing assignment or appending a new one.
func upsertEnvValue(content []byte, key, value string) []byte {
	if len(content) == 0 {
		return []byte(fmt.Sprintf("%s=%s\n", key, value))
	}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, key+"=") {
			lines[i] = fmt.Sprintf("%s=%s", key, value)
			out := strings.Join(lines, "\n")
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			return []byte(out)
		}
	}

	out := string(content)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out + fmt.Sprintf("%s=%s\n", key, value))
}
