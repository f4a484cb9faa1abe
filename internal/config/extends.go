package config

// presetPlugins maps the preset names accepted in "extends" to the plugin
// whose rules they enable. Presets evolve independently of the catalog, so
// names outside this table are ignored rather than rejected.
var presetPlugins = map[string]string{
	"eslint:recommended":                    "eslint",
	"plugin:react/recommended":              "react",
	"plugin:react-hooks/recommended":        "react",
	"plugin:@typescript-eslint/recommended": "typescript",
	"plugin:unicorn/recommended":            "unicorn",
	"plugin:jest/recommended":               "jest",
}

// resolveExtends collects the set of plugins enabled by the document's
// "extends" array. A missing key (or non-object document) yields an empty
// set. A present key with any non-array shape is a structural error.
// Non-string elements and unknown preset names are skipped silently.
func resolveExtends(doc any) (map[string]struct{}, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, nil
	}

	raw, ok := obj["extends"]
	if !ok {
		return nil, nil
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, ErrExtendsNotArray
	}

	plugins := make(map[string]struct{})
	for _, entry := range entries {
		preset, ok := entry.(string)
		if !ok {
			continue
		}
		if plugin, ok := presetPlugins[preset]; ok {
			plugins[plugin] = struct{}{}
		}
	}

	return plugins, nil
}
