package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

const responseVersion = 2

// ResponseCurrentTime returns the current time in epoch milliseconds
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewResponse builds a response envelope with the given code, data and text
func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     responseVersion,
	}
}

// NewOKResponse wraps data in a 200 envelope
func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse wraps a single entry and its references
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	return NewOKResponse(map[string]interface{}{
		"entry":      entry,
		"references": references,
	})
}

// NewListResponse wraps a list and its references
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	return NewOKResponse(map[string]interface{}{
		"limitExceeded": false,
		"list":          list,
		"references":    references,
	})
}
