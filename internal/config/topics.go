package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"insider/internal/domain"
)

// ErrEmptyTopicPool is returned when a topic file yields no usable topics
var ErrEmptyTopicPool = errors.New("topic pool is empty")

// TopicFile is the YAML layout of a custom topic pool:
//
//	topics:
//	  - りんご
//	  - 自転車
type TopicFile struct {
	Topics []string `yaml:"topics"`
}

// LoadTopics reads a topic pool from a YAML file. An empty path returns the
// built-in pool. Entries are trimmed; blanks and repeats are dropped.
func LoadTopics(path string) (domain.TopicPool, error) {
	if path == "" {
		return domain.DefaultTopics, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics file: %w", err)
	}

	var file TopicFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse topics file: %w", err)
	}

	pool := make(domain.TopicPool, 0, len(file.Topics))
	seen := make(map[string]bool, len(file.Topics))
	for _, topic := range file.Topics {
		topic = strings.TrimSpace(topic)
		if topic == "" || seen[topic] {
			continue
		}
		seen[topic] = true
		pool = append(pool, topic)
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTopicPool)
	}
	return pool, nil
}
