// Package rulebased implements a deterministic, offline answer provider.
// It matches the question against an ordered list of keyword groups and
// returns a canned answer for the first group that matches, simulating the
// latency of a real backend so callers exercise their loading states.
package rulebased

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cj5427533/BilingualBuddy/internal/answer"
)

// DefaultLatency approximates a network round trip.
const DefaultLatency = 500 * time.Millisecond

type rule struct {
	keywords []string
	answer   answer.Answer
}

// Provider answers questions from a fixed rule table. The same question
// always yields the same answer.
type Provider struct {
	latency time.Duration
	rules   []rule
}

type Option func(*Provider)

// WithLatency overrides the simulated response delay. Tests pass zero.
func WithLatency(d time.Duration) Option {
	return func(p *Provider) {
		p.latency = d
	}
}

func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		latency: DefaultLatency,
		// Order matters: when a question matches several groups, the
		// earliest group wins.
		rules: []rule{
			{
				keywords: []string{"2+4", "더하기"},
				answer: answer.Answer{
					VietnameseSummary: "2 cộng 4 bằng 6. Đây là phép tính cộng đơn giản.",
					KoreanExplanation: "2 더하기 4는 6입니다. 이것은 간단한 덧셈 문제입니다.",
					Pronunciation:     "hai công bốn bằng sáu",
				},
			},
			{
				keywords: []string{"수도", "서울"},
				answer: answer.Answer{
					VietnameseSummary: "Thủ đô của Hàn Quốc là Seoul. Seoul là thành phố lớn nhất và là trung tâm văn hóa, kinh tế của Hàn Quốc.",
					KoreanExplanation: "한국의 수도는 서울입니다. 서울은 한국에서 가장 큰 도시이며 문화와 경제의 중심지입니다.",
					Pronunciation:     "thủ đô của Hàn Quốc là Seoul",
				},
			},
			{
				keywords: []string{"화학식", "물"},
				answer: answer.Answer{
					VietnameseSummary: "Công thức hóa học của nước là H2O. Điều này có nghĩa là một phân tử nước bao gồm 2 nguyên tử hydro và 1 nguyên tử oxy.",
					KoreanExplanation: "물의 화학식은 H2O입니다. 이것은 물 분자가 수소 원자 2개와 산소 원자 1개로 이루어져 있다는 의미입니다.",
					Pronunciation:     "công thức hóa học của nước là H hai O",
				},
			},
			{
				keywords: []string{"행성", "태양계"},
				answer: answer.Answer{
					VietnameseSummary: "Hệ mặt trời có 8 hành tinh: Sao Thủy, Sao Kim, Trái Đất, Sao Hỏa, Sao Mộc, Sao Thổ, Sao Thiên Vương và Sao Hải Vương.",
					KoreanExplanation: "태양계에는 8개의 행성이 있습니다: 수성, 금성, 지구, 화성, 목성, 토성, 천왕성, 해왕성입니다.",
					Pronunciation:     "hệ mặt trời có tám hành tinh",
				},
			},
			{
				keywords: []string{"넓이", "원"},
				answer: answer.Answer{
					VietnameseSummary: "Diện tích của hình tròn được tính bằng công thức: π × r², trong đó r là bán kính của hình tròn và π (pi) xấp xỉ 3.14.",
					KoreanExplanation: "원의 넓이는 공식으로 계산합니다: π × r², 여기서 r은 원의 반지름이고 π(파이)는 약 3.14입니다.",
					Pronunciation:     "diện tích của hình tròn bằng pi nhân r bình phương",
				},
			},
			{
				keywords: []string{"전통", "음식"},
				answer: answer.Answer{
					VietnameseSummary: "Các món ăn truyền thống của Hàn Quốc bao gồm kimchi, bulgogi, bibimbap, và nhiều món khác. Những món ăn này phản ánh văn hóa ẩm thực độc đáo của Hàn Quốc.",
					KoreanExplanation: "한국의 전통 음식에는 김치, 불고기, 비빔밥 등이 있습니다. 이러한 음식들은 한국의 독특한 식문화를 반영합니다.",
					Pronunciation:     "các món ăn truyền thống của Hàn Quốc là kimchi, bulgogi, bibimbap",
				},
			},
			{
				keywords: []string{"자전", "지구"},
				answer: answer.Answer{
					VietnameseSummary: "Trái Đất quay quanh trục của nó một lần trong khoảng 24 giờ. Đây được gọi là chuyển động tự quay của Trái Đất, tạo ra ngày và đêm.",
					KoreanExplanation: "지구는 약 24시간에 한 번 자전축을 중심으로 회전합니다. 이것을 지구의 자전이라고 하며, 낮과 밤을 만들어냅니다.",
					Pronunciation:     "Trái Đất quay quanh trục trong 24 giờ",
				},
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetAnswer implements the provider.Provider interface
func (p *Provider) GetAnswer(ctx context.Context, question string) (answer.Answer, error) {
	if err := p.sleep(ctx); err != nil {
		return answer.Answer{}, err
	}

	for _, rule := range p.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(question, keyword) {
				return rule.answer, nil
			}
		}
	}

	return answer.Answer{
		VietnameseSummary: fmt.Sprintf("Đây là câu trả lời mẫu cho câu hỏi của bạn: %s. Vui lòng sử dụng OpenAI API để nhận câu trả lời chính xác hơn.", question),
		KoreanExplanation: fmt.Sprintf("이것은 질문에 대한 예시 답변입니다: %s. 더 정확한 답변을 받으려면 OpenAI API를 사용해주세요.", question),
		Pronunciation:     "đây là câu trả lời mẫu",
	}, nil
}

// ProcessImage implements the provider.Provider interface
func (p *Provider) ProcessImage(ctx context.Context, imageRef string) (answer.Answer, error) {
	if err := p.sleep(ctx); err != nil {
		return answer.Answer{}, err
	}

	return answer.Answer{
		VietnameseSummary: "숙제 사진을 분석하여 답변이 도출되었습니다.",
		KoreanExplanation: "업로드한 숙제 사진을 AI가 분석하여 결과를 제공합니다.",
		Pronunciation:     "이것은 발음 예시입니다.",
	}, nil
}

func (p *Provider) sleep(ctx context.Context) error {
	if p.latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.latency):
		return nil
	}
}
