package main

type uiState struct {
	mode        mode
	command     CommandInput
	noticeMsg   string
	noticeType  string
	noticeSeq   int
	footerHits  []footerHit
	loadingPath string
}
