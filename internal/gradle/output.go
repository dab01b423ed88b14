package gradle

import "strings"

const versionPrefix = "version:"

// outputLines splits output into whitespace-trimmed lines.
func outputLines(output string) ([]string, error) {
	if len(output) == 0 {
		return nil, &EmptyOutputError{}
	}
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, nil
}

// MissingTasks returns the required tasks that do not appear in the output
// of `gradle tasks`, in the order they were requested. Task lines look like
// "<name> - <description>", so a task is present when some line starts with
// its name.
func MissingTasks(output string, required []string) ([]string, error) {
	lines, err := outputLines(output)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, task := range required {
		if !hasLinePrefix(lines, task) {
			missing = append(missing, task)
		}
	}
	return missing, nil
}

// HasRequiredTasks reports whether every required task is listed in output.
func HasRequiredTasks(output string, required []string) (bool, error) {
	missing, err := MissingTasks(output, required)
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

// ExtractVersion returns the value of the first "version:" line printed by
// `gradle properties`, or "" when there is none.
func ExtractVersion(output string) (string, error) {
	lines, err := outputLines(output)
	if err != nil {
		return "", err
	}
	for _, line := range lines {
		if strings.HasPrefix(line, versionPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, versionPrefix)), nil
		}
	}
	return "", nil
}

func hasLinePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
