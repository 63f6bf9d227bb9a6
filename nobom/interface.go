package nobom

// Config for using nobom as a library.
type Config struct {
	// Print the per-file status lines while processing.
	Print bool
}

// Strip removes the BOM from each of the given files, in order, with the same
// per-file behavior as the command. It returns the paths grouped under
// "Removed", "Clean" and "Failed".
func Strip(paths []string, config Config) (map[string][]string, error) {
	app := newApp(paths, config.Print)

	summary, err := app.Execute()
	if err != nil {
		return nil, err
	}

	result := map[string][]string{
		"Removed": summary.Removed(),
		"Clean":   summary.Clean(),
		"Failed":  summary.Failed(),
	}

	return result, nil
}
