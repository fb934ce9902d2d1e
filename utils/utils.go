package utils

import (
	"bytes"
	"encoding/json"
	"os"
)

// WriteDataToFileAsJSON truncates filedir and writes data as an indented
// JSON document, with HTML escaping off so review text survives untouched.
func WriteDataToFileAsJSON(data interface{}, filedir string) (int, error) {
	//write data as buffer to json encoder
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return 0, err
	}
	file, err := os.Create(filedir)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	n, err := file.Write(buffer.Bytes())
	if err != nil {
		return 0, err
	}
	return n, nil
}
