package setops

import (
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/goto/chrono/client/local"
	lerrors "github.com/goto/chrono/client/local/errors"
	"github.com/goto/chrono/client/local/model"
	"github.com/goto/chrono/internal/errors"
	"github.com/goto/chrono/internal/lib/interval"
)

// readSets loads one ordered-disjoint set per file path, in order. All
// documents are checked before failing so one run reports every bad
// file; malformed documents map to the validation exit code.
func readSets(filePaths []string) ([]interval.Set, error) {
	me := errors.NewMultiError("errors in set documents")
	sets := make([]interval.Set, 0, len(filePaths))
	for _, filePath := range filePaths {
		spec, err := local.ReadSetSpec(filePath)
		if err != nil {
			me.Append(err)
			continue
		}
		set, err := spec.ToSet()
		if err != nil {
			me.Append(errors.Wrap(local.EntitySetSpec, filePath+" does not hold an ordered disjoint set", err))
			continue
		}
		sets = append(sets, set)
	}
	if err := me.ToErr(); err != nil {
		return nil, lerrors.NewCmdError(err, lerrors.ExitCodeValidationError)
	}
	return sets, nil
}

// writeResult renders the result as a table on stdout, or as a set
// document when an output path is given.
func writeResult(result interval.Set, outputPath string) error {
	if outputPath != "" {
		return local.WriteSetSpec(model.FromSet(result), outputPath)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Start", "End", "Tag"})
	for _, entry := range model.FromSet(result).Intervals {
		table.Append([]string{entry.Start, entry.End, entry.Tag})
	}
	table.Render()
	return nil
}
