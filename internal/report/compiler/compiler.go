// Package compiler drives report generation as a linear state machine:
//
//	CONFIGURING -> SUMMARIZING -> DETAILING -> RENDERING -> DONE
//
// SUMMARIZING and DETAILING run only when the descriptor asks for them. Any
// stage error moves the machine to the terminal FAILED state and no artifact
// bytes leave the compiler. Empty data is not an error; a report over an
// empty ledger completes with zeroed fields.
package compiler

import (
	"context"
	"time"

	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
	"go.uber.org/zap"
)

type State string

const (
	StateConfiguring State = "CONFIGURING"
	StateSummarizing State = "SUMMARIZING"
	StateDetailing   State = "DETAILING"
	StateRendering   State = "RENDERING"
	StateDone        State = "DONE"
	StateFailed      State = "FAILED"
)

// SummaryField is one label/value pair in a report's summary block.
type SummaryField struct {
	Label string
	Value string
}

// DetailTable is a homogeneous grid: the column set is fixed by the first
// row of the source data and every row carries one stringified cell per
// column, in column order.
type DetailTable struct {
	Columns []string
	Rows    [][]string
}

// Sources supplies the data stages. Implementations are per report type and
// are expected to scope every query to the requesting tenant.
type Sources interface {
	Summary(ctx context.Context) ([]SummaryField, error)
	Details(ctx context.Context) (*DetailTable, error)
}

// Document is the fully assembled report handed to a renderer.
type Document struct {
	Title       string
	TypeLabel   string
	Meta        []SummaryField
	Summary     []SummaryField
	Details     *DetailTable
	GeneratedAt time.Time
	GeneratedBy string
}

// Renderer turns an assembled document into artifact bytes.
type Renderer func(doc *Document) ([]byte, error)

type Compiler struct {
	log   *zap.Logger
	state State
}

func New(log *zap.Logger) *Compiler {
	return &Compiler{
		log:   log.Named("report.compiler"),
		state: StateConfiguring,
	}
}

// State reports the machine's current state; after Run it is either
// StateDone or StateFailed.
func (c *Compiler) State() State { return c.state }

// Run executes the pipeline once. A Compiler is single-use: a second Run on
// the same instance fails immediately.
func (c *Compiler) Run(ctx context.Context, reportType reportdomain.ReportType, doc *Document, includeSummary, includeDetails bool, src Sources, render Renderer) ([]byte, error) {
	if c.state != StateConfiguring {
		return nil, c.fail(reportdomain.ErrReportGeneration)
	}

	if !reportType.Valid() {
		return nil, c.fail(reportdomain.ErrInvalidType)
	}
	doc.TypeLabel = reportType.Label()

	if includeSummary {
		c.transition(StateSummarizing)
		if err := ctx.Err(); err != nil {
			return nil, c.fail(err)
		}
		summary, err := src.Summary(ctx)
		if err != nil {
			return nil, c.fail(err)
		}
		doc.Summary = summary
	}

	if includeDetails {
		c.transition(StateDetailing)
		if err := ctx.Err(); err != nil {
			return nil, c.fail(err)
		}
		details, err := src.Details(ctx)
		if err != nil {
			return nil, c.fail(err)
		}
		doc.Details = details
	}

	c.transition(StateRendering)
	if err := ctx.Err(); err != nil {
		return nil, c.fail(err)
	}
	artifact, err := render(doc)
	if err != nil {
		return nil, c.fail(err)
	}

	c.transition(StateDone)
	return artifact, nil
}

func (c *Compiler) transition(next State) {
	c.log.Debug("state transition",
		zap.String("from", string(c.state)),
		zap.String("to", string(next)),
	)
	c.state = next
}

func (c *Compiler) fail(err error) error {
	c.log.Warn("compilation failed",
		zap.String("state", string(c.state)),
		zap.Error(err),
	)
	c.state = StateFailed
	return err
}
