package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type usersFile struct {
	Users []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Role     Role   `yaml:"role"`
	} `yaml:"users"`
}

// SeedFromFile registers the users listed in a YAML file, skipping entries
// that are incomplete or already present. It returns how many were created.
func (s *Service) SeedFromFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	var uf usersFile
	if err := yaml.Unmarshal(data, &uf); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}
	created := 0
	for _, u := range uf.Users {
		if u.Username == "" || u.Password == "" || u.Role == "" {
			continue
		}
		if _, err := s.Register(ctx, u.Username, u.Password, u.Role); err != nil {
			if errors.Is(err, ErrUserAlreadyExists) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}
