package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lesswrong-ru/surveyctl/internal/aggregate"
	"github.com/lesswrong-ru/surveyctl/internal/ingest"
	"github.com/lesswrong-ru/surveyctl/internal/normalize"
	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

// Assemble runs the full pipeline: for every public catalog field in
// declared order, split → normalize → bucket → aggregate over all
// submissions, then attach schema metadata and build the manifest.
//
// The survey declaration is validated first; a structure↔catalog
// inconsistency is a configuration error and fails the run before any
// aggregation. Per-row data problems never do — malformed cells
// degrade to absent answers inside the pipeline.
func Assemble(s *schema.Survey, ds *ingest.Dataset) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("survey declaration rejected: %w", err)
	}

	rep := &Report{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Data:      make(map[string]*FieldReport),
		Structure: s.Structure,
		Total:     ds.Len(),
	}

	for _, f := range s.Catalog.PublicFields() {
		var answers []normalize.Answer
		for _, row := range ds.Rows() {
			raw, present := row.Get(f.Key)
			answers = append(answers, normalize.Atomize(f, raw, present)...)
		}

		res := aggregate.Aggregate(f, answers)
		if err := res.Validate(); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Key, err)
		}
		rep.Warnings = append(rep.Warnings, res.Collisions...)

		rep.Data[f.Key] = fieldReport(f, res)
		rep.Columns = append(rep.Columns, f.Key)
	}
	return rep, nil
}

func fieldReport(f *schema.FieldSchema, res *aggregate.Result) *FieldReport {
	fr := &FieldReport{
		Title:       f.Title,
		Type:        f.Type,
		OutputType:  f.Type,
		Sort:        f.Sort,
		Limit:       f.Limit,
		Multiple:    f.Multiple,
		TextTail:    f.TextTail,
		Show:        f.Show,
		Shortcuts:   f.Shortcuts,
		Note:        f.Note,
		CustomSort:  f.CustomOrder,
		OtherValues: res.OtherValues,
		Answered:    res.Answered,
	}
	if fr.Shortcuts == nil {
		fr.Shortcuts = map[string]string{}
	}
	// Bucketed numeric fields publish range labels, not numbers.
	if f.Bucket != schema.BucketNone {
		fr.OutputType = schema.TypeString
	}
	fr.Values = make([]ValueCount, 0, len(res.Values))
	for _, b := range res.Values {
		fr.Values = append(fr.Values, ValueCount{Value: b.Value.Display(), Count: b.Count})
	}
	return fr
}
