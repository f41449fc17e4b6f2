package domain

import "fmt"

// 生成フローの失敗は 5 種類に分類されます。
// Normalizer / Interpreter / Generation Client はこれらをそのまま伝播し、
// 状態の巻き戻しを判断するのはセッションコントローラだけです。

// FetchError はリモート画像の取得失敗（トランスポート異常・非成功ステータス）です。
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("リモート画像の取得に失敗しました (%s): %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MalformedEncodingError はインライン画像（data URL）の解析失敗です。
type MalformedEncodingError struct {
	Reason string
}

func (e *MalformedEncodingError) Error() string {
	return fmt.Sprintf("インライン画像の解析に失敗しました: %s", e.Reason)
}

// BlockedRequestError はプロバイダが生成前にリクエストを拒否したことを表します。
// Reason はプロバイダの理由コード、Message は付随する説明文です（空の場合あり）。
type BlockedRequestError struct {
	Reason  string
	Message string
}

func (e *BlockedRequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("リクエストがブロックされました (%s): %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("リクエストがブロックされました (%s)", e.Reason)
}

// AbnormalCompletionError は生成が正常終了以外の理由で打ち切られたことを表します。
// 多くの場合、セーフティポリシーによる途中停止です。
type AbnormalCompletionError struct {
	Reason string
}

func (e *AbnormalCompletionError) Error() string {
	return fmt.Sprintf("画像生成が異常終了しました (FinishReason: %s)", e.Reason)
}

// NoImageProducedError はプロバイダがテキストのみを返し、画像を生成しなかったことを表します。
// Text は診断用に保持するモデルの応答文です。
type NoImageProducedError struct {
	Text string
}

func (e *NoImageProducedError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("画像データが見つかりませんでした（モデル応答: %s）", e.Text)
	}
	return "画像データが見つかりませんでした"
}
