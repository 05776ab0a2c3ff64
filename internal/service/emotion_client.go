// internal/service/emotion_client.go
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rkrkrk1234/diarygarden/internal/config"
	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
)

const (
	emotionConnectTimeout = 5 * time.Second
	emotionTotalTimeout   = 10 * time.Second
	emotionTitleMaxRunes  = 20
)

// EmotionAnalyzer はダイアリー本文を感情分析サービスに送るアダプタです。
// 外部APIの失敗で呼び出し元を失敗させないよう、Analyze はエラーを返さず
// 常にフォールバック込みの結果を返す。
type EmotionAnalyzer interface {
	Analyze(ctx context.Context, diary *model.Diary) *model.EmotionAnalysis
}

type emotionAPIRequest struct {
	Title    string             `json:"title"`
	Text     string             `json:"text"`
	Metadata emotionAPIMetadata `json:"metadata"`
}

type emotionAPIMetadata struct {
	DiaryID string `json:"diaryId"`
}

type emotionAPIResponse struct {
	Comment         string             `json:"comment"`
	DominantEmotion string             `json:"dominantEmotion"`
	EmotionScores   map[string]float64 `json:"emotionScores"`
}

type restEmotionAnalyzer struct {
	rest      *resty.Client
	apiURL    string
	healthURL string
}

// NewRestEmotionAnalyzer は REST ベースの感情分析クライアントを返します。
func NewRestEmotionAnalyzer(cfg *config.Config, logger *slog.Logger) EmotionAnalyzer {
	rest := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTransport(newOutboundHTTPClient(emotionConnectTimeout, emotionTotalTimeout).Transport).
		SetTimeout(emotionTotalTimeout)
	if cfg.Emotion.APIKey != "" {
		rest.SetHeader("X-API-KEY", cfg.Emotion.APIKey)
	}

	logger.Info("Emotion analyzer initialized", slog.String("api_url", cfg.Emotion.APIURL))
	return &restEmotionAnalyzer{
		rest:      rest,
		apiURL:    cfg.Emotion.APIURL,
		healthURL: cfg.Emotion.HealthURL,
	}
}

// Analyze は外部APIを呼び、失敗時はニュートラルなフォールバック結果を返します。
func (a *restEmotionAnalyzer) Analyze(ctx context.Context, diary *model.Diary) *model.EmotionAnalysis {
	logger := middleware.GetLogger(ctx).With("diary_id", diary.ID)

	if strings.TrimSpace(diary.Content) == "" {
		return neutralAnalysis(diary.ID)
	}
	if a.apiURL == "" {
		logger.Warn("Emotion API URL is not configured, returning neutral result")
		return neutralAnalysis(diary.ID)
	}

	payload := emotionAPIRequest{
		Title:    truncateTitle(diary.Content),
		Text:     diary.Content,
		Metadata: emotionAPIMetadata{DiaryID: diary.ID},
	}

	var result emotionAPIResponse
	resp, err := a.rest.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post(a.apiURL)
	if err != nil {
		logger.Warn("Emotion API call failed", "error", err)
		a.probeHealth(ctx, logger)
		return neutralAnalysis(diary.ID)
	}
	if resp.IsError() {
		logger.Warn("Emotion API returned error status", "status", resp.StatusCode(), "body", resp.String())
		a.probeHealth(ctx, logger)
		return neutralAnalysis(diary.ID)
	}
	if len(result.EmotionScores) == 0 || result.DominantEmotion == "" {
		logger.Warn("Emotion API returned incomplete result")
		return neutralAnalysis(diary.ID)
	}

	return &model.EmotionAnalysis{
		DiaryID:         diary.ID,
		Result:          result.EmotionScores,
		DominantEmotion: result.DominantEmotion,
		Comment:         result.Comment,
	}
}

// probeHealth は分析失敗時にヘルスエンドポイントを叩いて
// サービス自体が落ちているのかを切り分けるための診断ログを残します。
func (a *restEmotionAnalyzer) probeHealth(ctx context.Context, logger *slog.Logger) {
	if a.healthURL == "" {
		return
	}
	resp, err := a.rest.R().SetContext(ctx).Get(a.healthURL)
	if err != nil {
		logger.Warn("Emotion API health probe failed", "error", err)
		return
	}
	logger.Info("Emotion API health probe", "status", resp.StatusCode())
}

func neutralAnalysis(diaryID string) *model.EmotionAnalysis {
	return &model.EmotionAnalysis{
		DiaryID:         diaryID,
		Result:          model.NeutralEmotionResult(),
		DominantEmotion: model.NeutralEmotion,
		Comment:         model.NeutralEmotionComment,
	}
}

// truncateTitle は本文の先頭からタイトルを作ります。
// 20文字を超える場合は切り詰めて "..." を付ける。
func truncateTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= emotionTitleMaxRunes {
		return content
	}
	return string(runes[:emotionTitleMaxRunes]) + "..."
}
