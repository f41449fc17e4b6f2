package generator

import (
	"strings"

	"github.com/shouni/gemini-mockup-kit/pkg/domain"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// InterpretResponse はプロバイダ応答を CanonicalImage か分類済みエラーへ解釈します。
//
// プロバイダは失敗を 3 つの独立したチャネルで通知してくるため、
// 以下の順序で判定し、最初に一致したものを採用します:
//  1. プロンプトフィードバックのブロック理由（生成前の拒否）
//  2. 候補内の最初のインライン画像（成功。以降の判定は行わない）
//  3. 先頭候補の FinishReason が Stop 以外（セーフティ打ち切り等）
//  4. 画像なし・テキストのみの応答
func InterpretResponse(resp *gemini.Response) (*domain.CanonicalImage, error) {
	if resp == nil || resp.RawResponse == nil {
		return nil, &domain.NoImageProducedError{}
	}
	raw := resp.RawResponse

	if fb := raw.PromptFeedback; fb != nil &&
		fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return nil, &domain.BlockedRequestError{
			Reason:  string(fb.BlockReason),
			Message: fb.BlockReasonMessage,
		}
	}

	// 候補は提供順に走査し、最初の画像パーツで確定する
	for _, candidate := range raw.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.CanonicalImage{
					MimeType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}

	if len(raw.Candidates) > 0 {
		if reason := raw.Candidates[0].FinishReason; reason != "" &&
			reason != genai.FinishReasonUnspecified && reason != genai.FinishReasonStop {
			return nil, &domain.AbnormalCompletionError{Reason: string(reason)}
		}
	}

	return nil, &domain.NoImageProducedError{Text: collectText(raw)}
}

// collectText は診断用に先頭候補のテキストパーツを連結します。
func collectText(raw *genai.GenerateContentResponse) string {
	if len(raw.Candidates) == 0 || raw.Candidates[0].Content == nil {
		return ""
	}
	var texts []string
	for _, part := range raw.Candidates[0].Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "\n")
}
