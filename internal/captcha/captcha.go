// Package captcha 產生登入用的數字驗證碼圖片並比對使用者輸入
package captcha

import (
	"bytes"
	"strings"

	"github.com/mojocn/base64Captcha"
)

const (
	DefaultLength = 4
	width         = 120
	height        = 40
	maxSkew       = 0.7
	dotCount      = 40
)

// Challenge 一組驗證碼：答案存入 session，Image 回傳給瀏覽器
type Challenge struct {
	Answer      string
	Image       []byte
	ContentType string
}

type Generator interface {
	Generate() (*Challenge, error)
}

// DigitGenerator 以 base64Captcha 的數字 driver 產生 PNG
type DigitGenerator struct {
	driver base64Captcha.Driver
}

func NewDigitGenerator(length int) *DigitGenerator {
	if length <= 0 {
		length = DefaultLength
	}
	return &DigitGenerator{
		driver: base64Captcha.NewDriverDigit(height, width, length, maxSkew, dotCount),
	}
}

func (g *DigitGenerator) Generate() (*Challenge, error) {
	_, question, answer := g.driver.GenerateIdQuestionAnswer()
	item, err := g.driver.DrawCaptcha(question)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := item.WriteTo(&buf); err != nil {
		return nil, err
	}
	return &Challenge{Answer: answer, Image: buf.Bytes(), ContentType: "image/png"}, nil
}

// Match 比對 session 中的答案與使用者輸入，忽略大小寫與前後空白，任一為空即失敗
func Match(expected, actual string) bool {
	expected = strings.TrimSpace(expected)
	actual = strings.TrimSpace(actual)
	if expected == "" || actual == "" {
		return false
	}
	return strings.EqualFold(expected, actual)
}
