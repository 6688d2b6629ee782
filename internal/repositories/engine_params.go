package repositories

import "strings"

// engineParams normalizes the dependency-relevant parameters of a table:
// the engine declaration arguments for Distributed, the source table for
// a materialized view, and the loading dependencies for everything else
// (dictionaries name their source table there).
func engineParams(engine, engineFull, createQuery string, depsDB, depsTable []string) []string {
	switch engine {
	case "Distributed":
		return parseEngineArgs(engineFull)
	case "MaterializedView":
		var params []string
		if refs := dependencyRefs(depsDB, depsTable); len(refs) > 0 {
			params = refs
		} else if src := materializedViewSource(createQuery); src != "" {
			params = []string{src}
		}
		if target := materializedViewTarget(createQuery); target != "" {
			params = append(params, target)
		}
		return params
	default:
		return dependencyRefs(depsDB, depsTable)
	}
}

func dependencyRefs(dbs, tables []string) []string {
	var refs []string
	for i, db := range dbs {
		if i >= len(tables) || db == "" || tables[i] == "" {
			continue
		}
		refs = append(refs, db+"."+tables[i])
	}
	return refs
}

// parseEngineArgs extracts the top-level argument list from an engine
// declaration such as Distributed('cluster', 'db', 'table', rand()).
// Quoting is stripped; nested calls stay intact as single arguments.
func parseEngineArgs(engineFull string) []string {
	open := strings.IndexByte(engineFull, '(')
	end := strings.LastIndexByte(engineFull, ')')
	if open < 0 || end <= open {
		return nil
	}
	inner := engineFull[open+1 : end]

	var args []string
	depth := 0
	quoted := false
	start := 0
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c == '\'' && (i == 0 || inner[i-1] != '\\'):
			quoted = !quoted
		case quoted:
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ',' && depth == 0:
			if arg := cleanEngineArg(inner[start:i]); arg != "" {
				args = append(args, arg)
			}
			start = i + 1
		}
	}
	if arg := cleanEngineArg(inner[start:]); arg != "" {
		args = append(args, arg)
	}
	return args
}

func cleanEngineArg(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "'")
}

// materializedViewTarget pulls the TO target out of a view's create
// query, empty when the view stores into its own inner table. Only the
// declaration head is inspected so the select body cannot match.
func materializedViewTarget(createQuery string) string {
	head, _, _ := strings.Cut(createQuery, " AS ")
	_, after, ok := strings.Cut(head, " TO ")
	if !ok {
		return ""
	}
	dst := strings.TrimSpace(after)
	if i := strings.IndexAny(dst, " \t\n("); i >= 0 {
		dst = dst[:i]
	}
	return strings.ReplaceAll(dst, "`", "")
}

// materializedViewSource pulls the source table reference out of a view's
// create query (the token after FROM), with identifier quoting removed.
func materializedViewSource(createQuery string) string {
	_, after, ok := strings.Cut(createQuery, " FROM ")
	if !ok {
		return ""
	}
	src := strings.TrimSpace(after)
	if i := strings.IndexAny(src, " \t\n)"); i >= 0 {
		src = src[:i]
	}
	return strings.ReplaceAll(src, "`", "")
}
