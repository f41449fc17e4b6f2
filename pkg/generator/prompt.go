package generator

import "fmt"

// compositePrompt は初回合成（ロゴを箱へ焼き込む）用の固定指示文です。
const compositePrompt = `You are given two images. The first image is a product box with a placeholder brand mark. The second image is a logo.
Replace the placeholder brand mark on the box with the supplied logo. The logo must follow the box surface exactly, matching the lighting, texture, perspective and any surface distortion of the original photograph, as if it had been printed there.
Do not change anything else about the scene. Output the image only, with no accompanying text.`

// anglePromptTemplate は視点指示をパラメータ化した再生成用テンプレートです。
const anglePromptTemplate = `Re-render the product box from this exact image as %s.
Keep the same box, the same printed logo, the same style, lighting and background. Only the camera viewpoint changes.
Output the image only, with no accompanying text.`

// anglePrompt は視点指示文から再生成プロンプトを組み立てます。
func anglePrompt(instruction string) string {
	return fmt.Sprintf(anglePromptTemplate, instruction)
}
