package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario 压测场景
type Scenario struct {
	BaseURL  string `yaml:"base_url"`
	Users    int    `yaml:"users"`
	Password string `yaml:"password"`

	// 每个用户并发发起的重复关注请求数，验证并发下只产生一条关注边
	DuplicateFollows int `yaml:"duplicate_follows"`

	PostsPerUser    int           `yaml:"posts_per_user"`
	FeedConcurrency int           `yaml:"feed_concurrency"`
	FeedDuration    time.Duration `yaml:"feed_duration"`
	FeedLimit       int           `yaml:"feed_limit"`
}

func defaultScenario() Scenario {
	return Scenario{
		BaseURL:          "http://localhost:8080",
		Users:            50,
		Password:         "stress-password",
		DuplicateFollows: 20,
		PostsPerUser:     3,
		FeedConcurrency:  32,
		FeedDuration:     10 * time.Second,
		FeedLimit:        20,
	}
}

// LoadScenario 读取场景文件，未填写的字段使用默认值
func LoadScenario(path string) (Scenario, error) {
	s := defaultScenario()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse scenario: %w", err)
	}
	if s.Users < 2 {
		return s, fmt.Errorf("scenario needs at least 2 users, got %d", s.Users)
	}
	if s.FeedLimit <= 0 || s.FeedLimit > 100 {
		return s, fmt.Errorf("feed_limit must be in 1..100, got %d", s.FeedLimit)
	}
	return s, nil
}
