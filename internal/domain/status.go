package domain

// Status is the lifecycle state of a transcription job.
//
// Full-support platforms move pending -> downloading -> transcribing ->
// done | failed. Metadata-only platforms move pending -> scraping ->
// metadata_done | failed. No transition retries automatically.
type Status string

const (
	StatusPending      Status = "pending"
	StatusDownloading  Status = "downloading"
	StatusTranscribing Status = "transcribing"
	StatusScraping     Status = "scraping"
	StatusDone         Status = "done"
	StatusMetadataDone Status = "metadata_done"
	StatusFailed       Status = "failed"
)
