package lookup

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/remote"
	"github.com/dmitrijs2005/fittrack/internal/netx"
)

// Analysis can take a while server-side but the screen shows a spinner, so
// the whole flow is capped.
const photoAnalysisTimeout = 30 * time.Second

// RemotePhotoAnalyzer uploads the photo to blob storage through a presigned
// URL handed out by the API, then asks the API to analyze it.
type RemotePhotoAnalyzer struct {
	client   *remote.Client
	uploader *http.Client
}

func NewRemotePhotoAnalyzer(client *remote.Client) *RemotePhotoAnalyzer {
	return &RemotePhotoAnalyzer{
		client:   client,
		uploader: &http.Client{Timeout: photoAnalysisTimeout},
	}
}

type photoUploadTicket struct {
	PhotoID   string `json:"photo_id"`
	UploadURL string `json:"upload_url"`
}

func (a *RemotePhotoAnalyzer) Analyze(ctx context.Context, photo []byte) (PhotoAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, photoAnalysisTimeout)
	defer cancel()

	var ticket photoUploadTicket
	if err := a.client.Post(ctx, "/api/photos", nil, &ticket); err != nil {
		return PhotoAnalysis{}, err
	}

	if err := netx.UploadToPresignedURL(ctx, a.uploader, ticket.UploadURL, photo); err != nil {
		return PhotoAnalysis{}, err
	}

	var analysis PhotoAnalysis
	if err := a.client.Post(ctx, "/api/photos/"+ticket.PhotoID+"/analyze", nil, &analysis); err != nil {
		return PhotoAnalysis{}, err
	}
	return analysis, nil
}
