package lines

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// MaxLineSize 单行（或单词）允许的最大长度
const MaxLineSize = 1024 * 1024

// Split 切分方式
type Split int

const (
	Lines Split = iota // 按行读取，跳过长度不超过1的行
	Words              // 按空白字符切分
)

// Source 从文件中惰性地读取行或单词
type Source struct {
	scanner *bufio.Scanner
	closer  io.Closer
	mode    Split
}

// Open 打开文件并返回 Source，使用完毕后需要 Close
func Open(path string, mode Split) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	s := NewSource(f, mode)
	s.closer = f
	return s, nil
}

// NewSource 从任意 io.Reader 读取，Close 不会关闭 r
func NewSource(r io.Reader, mode Split) *Source {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)
	if mode == Words {
		scanner.Split(bufio.ScanWords)
	}
	return &Source{
		scanner: scanner,
		mode:    mode,
	}
}

// Next 返回下一行（不含换行符）或下一个单词，读完或出错时第二个返回值为 false
func (s *Source) Next() (string, bool) {
	for s.scanner.Scan() {
		text := s.scanner.Text()
		if s.mode == Lines {
			// ScanLines 已经去掉了 \n 和结尾的 \r，长度不超过1的行都跳过
			if len(text) <= 1 {
				continue
			}
		}
		return text, true
	}
	return "", false
}

// Err 返回读取过程中遇到的第一个错误（EOF 不算错误）
func (s *Source) Err() error {
	return s.scanner.Err()
}

// Close 关闭 Open 打开的文件，可重复调用
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
