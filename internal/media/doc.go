// Package media processes cover art images for the resolver pipeline.
//
// The Scaler downsizes cover art to a bounded size and re-encodes it
// as JPEG:
//
//	scaler := media.NewScaler()
//	thumb, err := scaler.Thumbnail(ctx, imageData, 1000)
//
// Images already within bounds are still re-encoded so the output
// format is uniform. PNG and JPEG inputs are supported.
package media
