package tables

import (
	"go.uber.org/zap"

	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/model"
)

// Detector is the interface for table reconstruction algorithms
type Detector interface {
	// Detect builds the table of a page
	Detect(page *layout.Page) (*model.Table, error)

	// Name returns the detector name
	Name() string

	// Configure sets detector parameters
	Configure(config Config) error
}

var _ Detector = (*RowDetector)(nil)

// RowDetector reconstructs tables by clustering character baselines into
// rows and merging characters into cells by horizontal proximity.
type RowDetector struct {
	config Config
	logger *zap.Logger
}

// NewRowDetector creates a row detector with default configuration and a
// no-op logger.
func NewRowDetector() *RowDetector {
	return &RowDetector{
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
}

// WithLogger sets the logger used for debug output and returns the detector.
func (d *RowDetector) WithLogger(logger *zap.Logger) *RowDetector {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.logger = logger
	return d
}

// Name returns the detector's identifier ("rows").
func (d *RowDetector) Name() string {
	return "rows"
}

// Configure validates and sets the detector configuration.
func (d *RowDetector) Configure(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	d.config = config
	return nil
}

// Config returns the current configuration
func (d *RowDetector) Config() Config {
	return d.config
}

// Run reconstructs the page and logs one debug entry per row band.
func (d *RowDetector) Run(page *layout.Page) (*Result, error) {
	res, err := PageToTable(page, d.config)
	if err != nil {
		return nil, err
	}

	if d.logger.Core().Enabled(zap.DebugLevel) {
		for i, y := range res.RowYs {
			d.logger.Debug("row band",
				zap.Float64("y", y),
				zap.Int("cells", len(res.Grid[i])),
			)
		}
	}

	number := 0
	if page != nil {
		number = page.Number
	}
	d.logger.Debug("page table",
		zap.Int("page", number),
		zap.Int("rows", len(res.Grid)),
		zap.Int("cells", len(res.Cells)),
		zap.Int("dropped", res.Dropped),
	)

	return res, nil
}

// Detect reconstructs the page and returns its table. A page without text
// yields a table with no rows.
func (d *RowDetector) Detect(page *layout.Page) (*model.Table, error) {
	res, err := d.Run(page)
	if err != nil {
		return nil, err
	}
	number := 0
	if page != nil {
		number = page.Number
	}
	return res.Table(number), nil
}
