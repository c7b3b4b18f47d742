package config

// SetUserDir replaces the per-user configuration directory lookup.
func (l *Loader) SetUserDir(fn func() (string, error)) {
	l.userDir = fn
}
