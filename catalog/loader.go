package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// 目录 JSON 工件支持两种形态：
//   - 纯片名数组：["Avatar", "Titanic", ...]
//   - 对象数组：[{"title": "Avatar"}, ...]（离线导出工具的常见输出）
type movieRecord struct {
	Title string `json:"title"`
}

// LoadJSON 从 JSON 文件加载目录。片名顺序即矩阵行顺序。
func LoadJSON(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var titles []string
	if err := json.Unmarshal(data, &titles); err == nil {
		return NewIndex(titles)
	}

	var records []movieRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	titles = make([]string, len(records))
	for i, r := range records {
		titles[i] = r.Title
	}
	return NewIndex(titles)
}

// LoadCSV 从 CSV 文件加载目录。第一行是表头，取 "title" 列；
// 行顺序即矩阵行顺序。
func LoadCSV(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	titleCol := -1
	for i, name := range header {
		if name == "title" {
			titleCol = i
			break
		}
	}
	if titleCol < 0 {
		return nil, fmt.Errorf("csv: missing title column in header %v", header)
	}

	var titles []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if titleCol >= len(row) {
			return nil, fmt.Errorf("csv: row %d shorter than header", len(titles)+1)
		}
		titles = append(titles, row[titleCol])
	}

	return NewIndex(titles)
}
