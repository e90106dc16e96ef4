/*
Package status tracks what a run did to each file and owns the file system side of it.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Results |
	| (Manager) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads, globs and atomically rewrites files under one directory
- Classifies each file as updated, unchanged, not found or error
- Formats per-file lines and the closing summary

🔄 Flow:
1. operation asks the Manager whether a configured file exists
2. operation reads it, runs the style engine, and writes back on change
3. every outcome becomes a Result added to the Summary
4. the log package prints Results with a FileFormatter

📝 Design Philosophy:
No outcome here is fatal. A missing file or a failed write is a Result like
any other, so a run always reaches its summary.

🔍 Example:

	mgr := status.NewManager("src/components/admin/tabs")
	content, err := mgr.ReadFile(ctx, "UsersTab.tsx")

	var summary status.Summary
	summary.Add(status.Result{Name: "UsersTab.tsx", Status: status.StatusUpdated})
*/
package status
