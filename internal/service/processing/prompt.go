package processing

import (
	"fmt"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// AnalysisSystemPrompt instructs the text model to return the analysis JSON.
const AnalysisSystemPrompt = `당신은 한국의 20-30대가 쓴 일기를 분석하는 감성적인 AI입니다.

## 역할
1. 일기에서 핵심 장면을 추출 (그림으로 표현할 수 있게)
   - 구체적인 장소, 시간대, 날씨, 분위기를 포함
   - 시각적으로 상상 가능한 장면 (예: "아늑한 카페 창가, 비 오는 오후, 따뜻한 조명")
2. 감정을 분석
3. 구어체로 요약 (반말, 이모지 사용)
4. 따뜻한 캐릭터 메시지 생성 (귀여운 푸들강아지 캐릭터가 말하는 것처럼)

## 한국어 표현 이해
- "아아" = 아이스 아메리카노
- "퇴근 후 치맥" = 치킨과 맥주
- "카공" = 카페에서 공부
- "존맛" = 정말 맛있음
- "꿀잠" = 아주 깊은 잠
- "멍때리다" = 아무 생각 없이 쉬다

## 감정 종류
- joy: 기쁨, 행복, 신남
- sadness: 슬픔, 우울, 외로움
- anger: 화남, 짜증
- fear: 두려움, 무서움
- anxiety: 불안, 걱정, 긴장
- neutral: 평범, 무난

## 출력 형식 (JSON만, 설명 없이)
{
  "scene": "영어로 핵심 장면 묘사 (이미지 생성용, 구체적인 장소/시간/날씨/분위기 포함, 40-60단어)",
  "emotion": "joy|sadness|anger|fear|anxiety|neutral 중 하나",
  "emotionScore": -5~5 사이 정수 (음수=부정, 양수=긍정),
  "summary": "구어체 요약 (2-3문장, 이모지 포함)",
  "characterMessage": "캐릭터 공감 메시지 (반말, 따뜻하게, 이모지 1-2개)"
}

## scene 작성 예시
좋은 예: "Cozy cafe by the window on a rainy afternoon, warm yellow lighting, raindrops on glass, steaming coffee cup on wooden table"
나쁜 예: "Cafe with coffee"`

// AnalysisUserPrompt wraps the transcript for the text model.
func AnalysisUserPrompt(transcript string) string {
	return fmt.Sprintf("다음 일기를 분석해줘:\n\n\"%s\"", transcript)
}

var moodStyles = map[domain.Emotion]string{
	domain.EmotionJoy:     "bright cheerful colors, warm golden sunlight streaming through windows, happy uplifting atmosphere, vibrant spring colors, clear blue sky",
	domain.EmotionSadness: "soft blue and grey tones, gentle melancholy, rain falling softly, cozy indoor atmosphere, warm light contrasting cool exterior, comforting solitude",
	domain.EmotionAnger:   "dramatic warm orange and red tones, intense sunset or fiery sky, expressive clouds, dynamic energy, bold contrasts",
	domain.EmotionFear:    "deep purple and dark blue twilight, mysterious nighttime, gentle moonlight, comforting warm indoor lights, stars in sky",
	domain.EmotionAnxiety: "muted pastel colors, soft diffused lighting, worried but hopeful mood, gentle shadows, foggy or hazy atmosphere",
	domain.EmotionNeutral: "balanced warm natural colors, peaceful calm atmosphere, relaxed mood, soft daylight, gentle harmony",
}

// MoodStyle returns the palette for an emotion. Unknown values get the neutral style.
func MoodStyle(emotion string) string {
	return moodStyles[domain.NormalizeEmotion(emotion)]
}

const imagePromptTemplate = `Studio Ghibli style illustration, like a movie still from a Hayao Miyazaki film. Scenic landscape or cozy interior scene with NO people, NO characters, NO animals.

Scene Description: %s

Mood & Atmosphere: %s

Art Style: Hand-painted anime aesthetic, masterful use of light and shadow, rich environmental details, dreamy nostalgic atmosphere, vibrant yet soothing color palette, cinematic composition, depth and perspective.

Technical: High quality, detailed background art, painterly textures, soft gradients, atmospheric lighting effects.

IMPORTANT: Absolutely NO text, NO words, NO people, NO characters, NO animals in the image. Focus purely on environment and atmosphere.`

// BuildImagePrompt renders the illustration prompt for a scene.
func BuildImagePrompt(scene, emotion string) string {
	return fmt.Sprintf(imagePromptTemplate, scene, MoodStyle(emotion))
}
