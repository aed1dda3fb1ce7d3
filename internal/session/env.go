package session

// DiffEnv returns the entries of env whose keys do not appear in base.
// base is the environment of the capturing process; only keys are compared,
// so a variable inherited with a different value is still left out.
func DiffEnv(base, env map[string]string) map[string]string {
	diff := make(map[string]string)
	for k, v := range env {
		if _, ok := base[k]; ok {
			continue
		}
		diff[k] = v
	}
	return diff
}
