package handlers

// Recorder receives domain events worth counting. *metrics.Metrics implements it.
type Recorder interface {
	ProposalCreated()
	ProposalDecided(status string)
	CatalogLoadFailed()
}

type nopRecorder struct{}

func (nopRecorder) ProposalCreated() {}
func (nopRecorder) ProposalDecided(string) {}
func (nopRecorder) CatalogLoadFailed() {}

func orNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
