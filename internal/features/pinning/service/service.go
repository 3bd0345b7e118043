package service

import (
	"context"
	"io"

	"nft-treasury-backend/internal/common/logger"
	"nft-treasury-backend/internal/platform/pinata"
)

// Pinner is the slice of the Pinata client this service needs.
type Pinner interface {
	PinFile(ctx context.Context, filename string, file io.Reader) (*pinata.PinResult, error)
	PinJSON(ctx context.Context, content interface{}) (*pinata.PinResult, error)
}

// PinningService proxies front-end pin requests to Pinata so the JWT never
// reaches the browser.
type PinningService interface {
	PinFile(ctx context.Context, filename string, file io.Reader) (*pinata.PinResult, error)
	PinMetadata(ctx context.Context, metadata map[string]interface{}) (*pinata.PinResult, error)
}

type pinningService struct {
	pinner Pinner
}

func NewPinningService(pinner Pinner) PinningService {
	return &pinningService{
		pinner: pinner,
	}
}

func (s *pinningService) PinFile(ctx context.Context, filename string, file io.Reader) (*pinata.PinResult, error) {
	result, err := s.pinner.PinFile(ctx, filename, file)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("filename", filename).
		Str("ipfs_hash", result.IpfsHash).
		Msg("File pinned to IPFS")
	return result, nil
}

func (s *pinningService) PinMetadata(ctx context.Context, metadata map[string]interface{}) (*pinata.PinResult, error) {
	result, err := s.pinner.PinJSON(ctx, metadata)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("ipfs_hash", result.IpfsHash).
		Msg("Metadata pinned to IPFS")
	return result, nil
}
