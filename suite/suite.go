// Package suite 是 strtol 用例的注册与执行器：用例来自 YAML，逐条断言
// (value, consumed, overflow) 三元组并汇总报告。
package suite

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Want 是期望的转换结果。
type Want struct {
	Value    int64 `yaml:"value" json:"value"`
	Consumed int   `yaml:"consumed" json:"consumed"`
	Overflow bool  `yaml:"overflow" json:"overflow"`
}

// Case 单条用例。BitSize 省略时按 64 位。
type Case struct {
	Name    string `yaml:"name" json:"name"`
	Text    string `yaml:"text" json:"text"`
	Base    int    `yaml:"base" json:"base"`
	BitSize int    `yaml:"bit-size,omitempty" json:"bit-size,omitempty"`
	Want    Want   `yaml:"want" json:"want"`
}

// Suite 一组具名用例。
type Suite struct {
	Name  string `yaml:"name" json:"name"`
	Cases []Case `yaml:"cases" json:"cases"`
}

var errEmptyName = errors.New("case name is empty")

// New 创建空套件。
func New(name string) *Suite {
	return &Suite{Name: name}
}

// Add 注册用例。
func (s *Suite) Add(c Case) {
	s.Cases = append(s.Cases, c)
}

// Load 从 YAML 读取套件，未知字段报错。
func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Suite
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("load suite: empty document")
		}
		return nil, fmt.Errorf("load suite: %w", err)
	}
	for i, c := range s.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("load suite: case #%d: %w", i, errEmptyName)
		}
		if c.BitSize == 0 {
			s.Cases[i].BitSize = 64
		}
	}
	return &s, nil
}

// LoadFile 读取 YAML 文件。
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open suite %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
