package queries

import (
	"image"

	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/core/domain/services"
)

// courierManifest is the part of a session printed for the selected courier.
type courierManifest struct {
	courier string
	rows    []manifest.Row
	meta    manifest.Meta
}

// selectCourierManifest copies the selected courier's rows out of s. It fails
// with session.ErrNoCourierSelected or services.ErrEmptyPartition.
func selectCourierManifest(s *session.Session, partitioner services.CourierPartitioner) (courierManifest, error) {
	name, err := s.RequireCourier()
	if err != nil {
		return courierManifest{}, err
	}

	rows, err := partitioner.Partition(s.Manifest().Records(), name)
	if err != nil {
		return courierManifest{}, err
	}

	return courierManifest{courier: name, rows: rows, meta: s.Meta()}, nil
}

// captureSignature returns the pad image, or a nil interface when the pad is blank.
func captureSignature(s *session.Session, kind signature.Kind) (image.Image, error) {
	pad, err := s.Pad(kind)
	if err != nil {
		return nil, err
	}
	if img := pad.Capture(); img != nil {
		return img, nil
	}
	return nil, nil
}
