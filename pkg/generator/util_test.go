package generator

import "testing"

func TestSeedToPtrInt32(t *testing.T) {
	t.Run("nil の場合は nil を返すのだ", func(t *testing.T) {
		if got := seedToPtrInt32(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("値がある場合は int32 に変換されるのだ", func(t *testing.T) {
		var val int64 = 999
		got := seedToPtrInt32(&val)
		if got == nil || *got != 999 {
			t.Errorf("expected 999, got %v", got)
		}
	})
}

func TestIsSafeURL(t *testing.T) {
	// 名前解決が必要なケースはテスト環境に依存するため、
	// スキームと IP 直指定のケースのみを検証する。
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"不正なスキーム", "gopher://example.com", true},
		{"解析できないURL", "://not-a-url", true},
		{"ループバックIP", "http://127.0.0.1/admin", true},
		{"プライベートIP (クラスA)", "http://10.255.255.254/metadata", true},
		{"プライベートIP (クラスC)", "https://192.168.1.1/router", true},
		{"リンクローカル", "http://169.254.169.254/latest/meta-data", true},
		{"パブリックIP直指定", "https://93.184.216.34/image.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, err := IsSafeURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("IsSafeURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && safe {
				t.Errorf("%s: unsafe URL was flagged as safe", tt.url)
			}
			if !tt.wantErr && !safe {
				t.Errorf("%s: safe URL was flagged as unsafe", tt.url)
			}
		})
	}
}
