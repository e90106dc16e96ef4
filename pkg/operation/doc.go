/*
Package operation implements the file driver of a restyle run.

	+-------------+
	|  Operation  |
	|  (Driver)   |
	+------+------+
	       |
	+------+------+
	|    Style    |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Walks the configured entries in order, expanding glob entries
- Reads each file, runs the style engine, writes back only on change
- Hands every outcome to a Reporter and the run Summary

🔄 Flow:
1. Missing file: reported as not found, skipped
2. Read, decode or write failure: reported as error, run continues
3. Identical output: reported as unchanged, file untouched
4. Different output: written via temp file and rename, reported as updated

⚡ Key Responsibilities:
- Ordering: strictly sequential, one file at a time
- Dry runs: the same classification without any write
- Diffs: optional line diff of what changed

🔍 Example:

	runner, err := operation.NewRunner(operation.Options{
		Engine:    style.New(),
		Directory: "src/components/admin/tabs",
		Files:     []string{"UsersTab.tsx"},
		Reporter:  logger,
	})
	summary := runner.Run(ctx)
*/
package operation
