package domain

// MaxFilenameLength is the hard budget for a fully specified output filename.
const MaxFilenameLength = 250

// TruncatedFilename builds path+part1+middle+part2+extension no longer than MaxFilenameLength.
// Only part1 and part2 are shortened. path must include its trailing separator.
//
// The longer fragment is trimmed first, but never below the length of the shorter one.
// If that is not enough, both fragments lose the same number of characters.
func TruncatedFilename(path, part1, middle, part2, extension string) (string, error) {
	length := len(path) + len(part1) + len(middle) + len(part2) + len(extension)
	if length <= MaxFilenameLength {
		return path + part1 + middle + part2 + extension, nil
	}

	overflow := length - MaxFilenameLength

	one, two := part1, part2
	switch {
	case len(one) > len(two):
		one = one[:max(len(two), len(one)-overflow)]
		overflow -= len(part1) - len(one)
	case len(two) > len(one):
		two = two[:max(len(one), len(two)-overflow)]
		overflow -= len(part2) - len(two)
	}
	if overflow == 0 {
		return path + one + middle + two + extension, nil
	}

	// Both fragments have the same length here.
	cut := (overflow + 1) / 2
	if cut >= len(one) {
		return "", &FilenameTooLongError{Name: path + part1 + middle + part2 + extension}
	}
	return path + one[:len(one)-cut] + middle + two[:len(two)-cut] + extension, nil
}

// FilenameTooLongError carries the untruncated name of an output file that
// could not be shortened. It matches ErrFilenameTooLong with errors.Is.
type FilenameTooLongError struct {
	Name string
}

func (e *FilenameTooLongError) Error() string {
	return ErrFilenameTooLong.Error() + ": '" + e.Name + "'"
}

func (e *FilenameTooLongError) Unwrap() error {
	return ErrFilenameTooLong
}
