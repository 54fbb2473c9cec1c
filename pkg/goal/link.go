package goal

// LinkIssue rewrites the document's metadata table on disk to record the
// given tracking issue, adding the row or overwriting an existing one. Only
// the table's original byte range is touched; the rest of the file is
// preserved verbatim. The in-memory document is not updated — re-load to
// observe the change. Concurrent links against the same file must be
// serialized by the caller.
func (d *Document) LinkIssue(id IssueID) error {
	updated := d.Metadata.Table.Clone()
	updated.SetKeyValue(TrackingIssueRow, id.String())
	return d.Metadata.Table.OverwriteInFile(d.Path, updated)
}
