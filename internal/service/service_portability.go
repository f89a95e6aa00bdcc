package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
)

// ExportFileName is the name under which the users export is written.
const ExportFileName = "ar-fit-users-data.json"

// portabilityService moves the whole user collection in and out as JSON.
type portabilityService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewPortabilityService returns the export/import service over the user
// collection. Export and import always cover every user on the device.
func NewPortabilityService(userRepository store.UserRepository, logger *logger.Logger) PortabilityService {
	return &portabilityService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ExportAll renders every user record as an indented JSON array.
func (p *portabilityService) ExportAll(ctx context.Context) ([]byte, error) {
	users, err := p.userRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	p.logger.Info().Int("users", len(users)).Msg("users exported")
	return data, nil
}

// ImportAll replaces the whole users collection with data. Anything other
// than a JSON array of user records is rejected with ErrParse and the
// collection is left untouched.
func (p *portabilityService) ImportAll(ctx context.Context, data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		p.logger.Debug().Err(err).Msg("import is not a JSON array")
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	// null decodes into a nil slice
	if items == nil {
		return fmt.Errorf("%w: top-level value is null", ErrParse)
	}

	users := make([]models.User, 0, len(items))
	for i, item := range items {
		var user models.User
		if err := json.Unmarshal(item, &user); err != nil {
			p.logger.Debug().Err(err).Int("index", i).Msg("import element is not a user record")
			return fmt.Errorf("%w: element %d: %w", ErrParse, i, err)
		}
		users = append(users, user)
	}

	if err := p.userRepository.ReplaceAll(ctx, users); err != nil {
		p.logger.Err(err).Str("func", "portabilityService.ImportAll").Msg("error replacing users")
		return fmt.Errorf("import users: %w", err)
	}

	p.logger.Info().Int("users", len(users)).Msg("users imported")
	return nil
}

// ExportTo writes the export through sink under [ExportFileName] and
// returns the location reported by the sink. Sink errors are wrapped so
// callers can still match adapter sentinels.
func (p *portabilityService) ExportTo(ctx context.Context, sink ExportSink) (string, error) {
	data, err := p.ExportAll(ctx)
	if err != nil {
		return "", err
	}

	location, err := sink.Put(ctx, ExportFileName, data)
	if err != nil {
		p.logger.Err(err).Str("func", "portabilityService.ExportTo").Msg("error writing export")
		return "", fmt.Errorf("write export: %w", err)
	}
	return location, nil
}
