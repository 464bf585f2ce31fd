package uploads

import (
	"io"
	"math"
)

// ProgressReader wraps the source stream and reports whole-percent progress
// as bytes pass through. With an unknown or zero total it stays silent; the
// task reports 100 when the transfer hands off to the commit phase.
type ProgressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report func(pct int)
}

func NewProgressReader(r io.Reader, total int64, report func(pct int)) *ProgressReader {
	return &ProgressReader{r: r, total: total, report: report}
}

func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.read += int64(n)
		if pr.total > 0 && pr.report != nil {
			pct := int(math.Round(float64(pr.read) / float64(pr.total) * 100))
			if pct > 100 {
				pct = 100
			}
			pr.report(pct)
		}
	}
	return n, err
}
