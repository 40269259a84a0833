package workflow

import (
	"sort"
	"strings"
)

// Guidance is the static reference entry for one canonical task name.
// Prerequisites are canonical names and define the dependency graph;
// only the Japanese table carries them.
type Guidance struct {
	Description   string
	Deliverable   string
	Tips          []string
	Checkpoints   []string
	Prerequisites []string
}

var guidanceJA = map[string]Guidance{
	"目的/ゴールの明確化": {
		Description: "広報物を作成する目的と達成したいゴールを明文化します。「なぜこの広報物が必要か」を関係者全員が共有できる状態を目指します。",
		Deliverable: "目的・ゴール記述書（A4 1枚程度）",
		Tips:        []string{"「誰に」「何を」「どうしてほしいか」の3点を必ず含める", "数値目標があれば明記（問い合わせ数、認知度等）", "上長や決裁者の承認を得ておくとスムーズ"},
		Checkpoints: []string{"目的が1文で説明できるか", "ターゲットに到達可能な手段か", "予算・期間内で実現可能か"},
	},
	"ターゲット/ペルソナ設定": {
		Description:   "想定読者の属性・課題・ニーズを具体的な人物像として定義します。",
		Deliverable:   "ペルソナシート（1-3人分）",
		Tips:          []string{"実在の知人をモデルにすると具体化しやすい", "「この人が読んだらどう感じるか」を常に意識", "複数ペルソナがある場合は優先順位を付ける"},
		Checkpoints:   []string{"年齢・職業・役職が明確か", "抱えている課題や悩みが特定できているか", "情報収集の方法が分かっているか"},
		Prerequisites: []string{"目的/ゴールの明確化"},
	},
	"競合/類似物調査": {
		Description:   "競合他社や類似の広報物を収集・分析し、差別化ポイントを見つけます。",
		Deliverable:   "競合調査レポート（比較表含む）",
		Tips:          []string{"3-5件程度の類似物を集める", "良い点・改善点を両方メモする", "デザイン、メッセージ、構成をチェック"},
		Checkpoints:   []string{"主要な競合を網羅しているか", "差別化ポイントが明確になったか"},
		Prerequisites: []string{"目的/ゴールの明確化"},
	},
	"コアメッセージ決定": {
		Description:   "広報物全体を貫く核となるメッセージを決定します。",
		Deliverable:   "コアメッセージ文（1-2文）",
		Tips:          []string{"読者が一番覚えてほしいことを1文で", "ベネフィット（読者の利益）を入れる", "競合と差別化できる表現を選ぶ"},
		Checkpoints:   []string{"読者目線で魅力的か", "簡潔で覚えやすいか", "全体の方向性を示せているか"},
		Prerequisites: []string{"ターゲット/ペルソナ設定", "競合/類似物調査"},
	},
	"構成案/台割作成": {
		Description:   "ページ構成と各ページの役割を決めます。",
		Deliverable:   "台割表（ページ割り付け表）",
		Tips:          []string{"読者の関心の流れに沿って配置", "重要な情報は前半に", "見開き単位で考える"},
		Checkpoints:   []string{"情報の過不足がないか", "読者が迷わない流れになっているか", "ページ数は適切か"},
		Prerequisites: []string{"コアメッセージ決定"},
	},
	"スケジュール/予算確定": {
		Description:   "制作から納品までのスケジュールと予算を確定します。",
		Deliverable:   "スケジュール表、予算書",
		Tips:          []string{"校正や修正の時間を十分に確保", "外注費用は見積もりを取る", "印刷部数と単価を確認"},
		Checkpoints:   []string{"各工程の担当者が決まっているか", "締め切りに余裕があるか", "予算内に収まるか"},
		Prerequisites: []string{"構成案/台割作成"},
	},
	"企画承認": {
		Description:   "企画内容について関係者の承認を得ます。",
		Deliverable:   "承認済み企画書",
		Tips:          []string{"決裁者には事前に相談しておく", "懸念点は先に対策を用意", "承認履歴を記録しておく"},
		Checkpoints:   []string{"必要な決裁者全員の承認を得たか", "修正指示は明確に記録したか"},
		Prerequisites: []string{"目的/ゴールの明確化", "スケジュール/予算確定"},
	},
	"取材対象者リスト作成": {
		Description:   "取材が必要な人物をリストアップし、優先順位を付けます。",
		Deliverable:   "取材対象者リスト（連絡先、役割含む）",
		Tips:          []string{"キーパーソンを特定する", "代替候補も用意しておく", "取材の目的と聞きたいことを整理"},
		Checkpoints:   []string{"必要な取材対象を網羅しているか", "連絡先は確認できているか"},
		Prerequisites: []string{"構成案/台割作成"},
	},
	"取材質問設計": {
		Description:   "取材で聞く質問を事前に設計します。",
		Deliverable:   "質問リスト",
		Tips:          []string{"オープンクエスチョンを中心に", "「なぜ」「どのように」を多用", "想定回答に対する深掘り質問も用意"},
		Checkpoints:   []string{"広報物に必要な情報を引き出せる質問か", "時間内に収まる量か"},
		Prerequisites: []string{"取材対象者リスト作成"},
	},
	"取材アポイント調整": {
		Description:   "取材対象者との日程・場所を調整します。",
		Deliverable:   "取材スケジュール表",
		Tips:          []string{"候補日は複数提示", "所要時間を明確に伝える", "取材目的と使用用途を説明"},
		Checkpoints:   []string{"全員の日程が確定したか", "場所・機材の手配は済んでいるか"},
		Prerequisites: []string{"取材質問設計"},
	},
	"取材実施/記録": {
		Description:   "取材を実施し、内容を記録します。",
		Deliverable:   "取材記録（録音データ、メモ）",
		Tips:          []string{"録音許可を必ず取る", "表情や雰囲気もメモ", "写真撮影の許可も確認"},
		Checkpoints:   []string{"必要な情報は聞けたか", "記録は正確に残せているか"},
		Prerequisites: []string{"取材アポイント調整"},
	},
	"文字起こし/記録整理": {
		Description:   "取材内容を文字に起こし、整理します。",
		Deliverable:   "取材記録文書",
		Tips:          []string{"重要な発言にはマーキング", "使えそうな引用をピックアップ", "不明点は早めに確認"},
		Checkpoints:   []string{"引用として使える発言を抽出したか", "事実確認が必要な箇所を特定したか"},
		Prerequisites: []string{"取材実施/記録"},
	},
	"写真/素材撮影・収集": {
		Description:   "広報物に使用する写真や素材を撮影・収集します。",
		Deliverable:   "写真データ、素材ファイル",
		Tips:          []string{"複数アングルで撮影", "高解像度で保存", "使用許諾を確認"},
		Checkpoints:   []string{"必要なカットは揃っているか", "画質は印刷に耐えるか", "肖像権・著作権は確認したか"},
		Prerequisites: []string{"構成案/台割作成"},
	},
	"素材の不足確認/追加入手": {
		Description:   "不足している素材を特定し、追加で入手します。",
		Deliverable:   "追加素材",
		Tips:          []string{"台割と照らし合わせてチェック", "代替案も検討", "入手に時間がかかるものは早めに"},
		Checkpoints:   []string{"全ての素材が揃ったか", "品質は十分か"},
		Prerequisites: []string{"写真/素材撮影・収集", "文字起こし/記録整理"},
	},
	"初稿執筆": {
		Description:   "取材内容と構成案をもとに原稿の初稿を執筆します。",
		Deliverable:   "原稿初稿",
		Tips:          []string{"まずは書き切ることを優先", "読者目線を意識", "コアメッセージを繰り返し確認"},
		Checkpoints:   []string{"コアメッセージが伝わる内容か", "文字数は適切か", "事実に誤りがないか"},
		Prerequisites: []string{"構成案/台割作成", "文字起こし/記録整理"},
	},
	"キャッチ/見出し案作成": {
		Description:   "キャッチコピーや見出しの案を複数作成します。",
		Deliverable:   "キャッチコピー案、見出し案（各3-5案）",
		Tips:          []string{"読者の興味を引く表現を", "数字や具体性を入れる", "短く印象的に"},
		Checkpoints:   []string{"目を引く表現になっているか", "内容と一致しているか", "競合と差別化できているか"},
		Prerequisites: []string{"初稿執筆"},
	},
	"内部レビュー（文章）": {
		Description:   "原稿を関係者に回覧し、フィードバックを収集します。",
		Deliverable:   "レビューコメント一覧",
		Tips:          []string{"レビュー観点を明示して依頼", "締め切りを設定", "矛盾する意見は調整が必要"},
		Checkpoints:   []string{"必要な関係者全員からフィードバックを得たか", "修正方針は明確か"},
		Prerequisites: []string{"初稿執筆", "キャッチ/見出し案作成"},
	},
	"修正/第2稿作成": {
		Description:   "レビューを踏まえて原稿を修正します。",
		Deliverable:   "原稿第2稿",
		Tips:          []string{"指摘事項を一覧化してから着手", "修正箇所を明示", "新たな問題を生まないよう注意"},
		Checkpoints:   []string{"指摘事項は全て対応したか", "修正により文脈が崩れていないか"},
		Prerequisites: []string{"内部レビュー（文章）"},
	},
	"対象者/関係者確認": {
		Description:   "取材対象者や関係者に原稿内容を確認してもらいます。",
		Deliverable:   "確認済み原稿",
		Tips:          []string{"確認期限を明示", "修正可能な範囲を伝える", "確認履歴を記録"},
		Checkpoints:   []string{"発言内容に誤りがないか", "公開して問題ない内容か"},
		Prerequisites: []string{"修正/第2稿作成"},
	},
	"原稿確定": {
		Description:   "原稿の最終版を確定します。",
		Deliverable:   "確定原稿",
		Tips:          []string{"これ以降の修正は最小限に", "確定日を記録", "バージョン管理を徹底"},
		Checkpoints:   []string{"必要な承認を全て得たか", "誤字脱字の最終チェックは済んだか"},
		Prerequisites: []string{"対象者/関係者確認"},
	},
	"デザインコンセプト決定": {
		Description:   "広報物全体のデザインの方向性を決定します。",
		Deliverable:   "デザインコンセプトシート、ムードボード",
		Tips:          []string{"ターゲットの好みを考慮", "競合との差別化を意識", "参考イメージを集める"},
		Checkpoints:   []string{"コアメッセージと一致しているか", "実現可能なデザインか"},
		Prerequisites: []string{"コアメッセージ決定", "構成案/台割作成"},
	},
	"ラフレイアウト作成": {
		Description:   "各ページの大まかなレイアウトを作成します。",
		Deliverable:   "ラフレイアウト",
		Tips:          []string{"手書きでも可", "要素の優先順位を意識", "余白を十分に取る"},
		Checkpoints:   []string{"情報の階層が明確か", "視線の流れは自然か"},
		Prerequisites: []string{"デザインコンセプト決定"},
	},
	"写真/図版選定・配置": {
		Description:   "使用する写真や図版を選定し、配置を決めます。",
		Deliverable:   "写真・図版配置案",
		Tips:          []string{"高品質なものを選ぶ", "統一感を意識", "キャプションの要否を確認"},
		Checkpoints:   []string{"全ての素材が揃っているか", "配置は適切か"},
		Prerequisites: []string{"ラフレイアウト作成", "素材の不足確認/追加入手"},
	},
	"初稿組版作成": {
		Description:   "デザインソフトで実際の組版を作成します。",
		Deliverable:   "組版初稿（PDF等）",
		Tips:          []string{"文字サイズ・行間を適切に", "印刷を想定した色設定", "校正用にPDF出力"},
		Checkpoints:   []string{"文字は読みやすいか", "写真の解像度は十分か", "はみ出し等はないか"},
		Prerequisites: []string{"原稿確定", "写真/図版選定・配置"},
	},
	"内部レビュー（デザイン）": {
		Description:   "デザインを関係者に確認してもらいます。",
		Deliverable:   "デザインレビューコメント",
		Tips:          []string{"画面と印刷で見え方が違うことを考慮", "複数の目でチェック", "優先度を付けてフィードバック"},
		Checkpoints:   []string{"デザインコンセプトに沿っているか", "読みやすさは確保できているか"},
		Prerequisites: []string{"初稿組版作成"},
	},
	"デザイン修正": {
		Description:   "レビューを踏まえてデザインを修正します。",
		Deliverable:   "修正版デザイン",
		Tips:          []string{"修正履歴を残す", "大きな変更は再確認を", "細部まで丁寧に"},
		Checkpoints:   []string{"指摘事項は全て対応したか", "新たな問題は生じていないか"},
		Prerequisites: []string{"内部レビュー（デザイン）"},
	},
	"デザイン確定": {
		Description:   "デザインの最終版を確定します。",
		Deliverable:   "確定デザイン",
		Tips:          []string{"確定後の修正は避ける", "印刷用データの形式を確認", "バックアップを取る"},
		Checkpoints:   []string{"必要な承認を得たか", "印刷仕様に合っているか"},
		Prerequisites: []string{"デザイン修正"},
	},
	"初校チェック": {
		Description:   "組版の初校を校正します。",
		Deliverable:   "初校ゲラ（赤字入り）",
		Tips:          []string{"誤字脱字を重点的に", "事実関係も再確認", "複数人でチェック"},
		Checkpoints:   []string{"誤字脱字はないか", "数字・固有名詞は正確か", "レイアウト崩れはないか"},
		Prerequisites: []string{"デザイン確定"},
	},
	"初校赤字反映": {
		Description:   "初校の校正結果を反映します。",
		Deliverable:   "修正版組版",
		Tips:          []string{"赤字を一つずつ確認しながら反映", "反映漏れに注意", "修正前後を比較"},
		Checkpoints:   []string{"全ての赤字を反映したか", "新たなミスを生んでいないか"},
		Prerequisites: []string{"初校チェック"},
	},
	"再校チェック": {
		Description:   "修正後の再校を確認します。",
		Deliverable:   "再校ゲラ（赤字入り）",
		Tips:          []string{"初校の修正箇所を重点確認", "全体の整合性もチェック", "読者目線で通読"},
		Checkpoints:   []string{"初校の指摘は正しく反映されているか", "新たな問題はないか"},
		Prerequisites: []string{"初校赤字反映"},
	},
	"再校赤字反映": {
		Description:   "再校の校正結果を反映します。",
		Deliverable:   "修正版組版",
		Tips:          []string{"慎重に反映", "必要に応じて三校へ"},
		Checkpoints:   []string{"全ての赤字を反映したか", "修正による副作用はないか"},
		Prerequisites: []string{"再校チェック"},
	},
	"三校チェック": {
		Description:   "最終確認として三校をチェックします。",
		Deliverable:   "三校ゲラ（赤字入り）",
		Tips:          []string{"最終チェックの意識で", "細部まで確認", "印刷に出しても問題ないか判断"},
		Checkpoints:   []string{"完成度は十分か", "見落としはないか"},
		Prerequisites: []string{"再校赤字反映"},
	},
	"三校赤字反映": {
		Description:   "三校の校正結果を反映します。",
		Deliverable:   "最終版組版",
		Tips:          []string{"最小限の修正に留める", "修正後は再度確認"},
		Checkpoints:   []string{"校了できる状態か"},
		Prerequisites: []string{"三校チェック"},
	},
	"色校正出し/確認": {
		Description:   "印刷機で出力した色校正を確認します。",
		Deliverable:   "色校正紙",
		Tips:          []string{"自然光で確認", "画面との違いをチェック", "重要な写真は特に注意"},
		Checkpoints:   []string{"色味は意図通りか", "印刷品質は問題ないか"},
		Prerequisites: []string{"三校赤字反映"},
	},
	"色校正戻し/確定": {
		Description:   "色校正の結果を印刷会社に戻し、確定します。",
		Deliverable:   "色校正戻し指示書",
		Tips:          []string{"修正箇所は具体的に指示", "許容範囲を明示", "最終確認の意識で"},
		Checkpoints:   []string{"印刷に進んで問題ないか", "修正指示は明確か"},
		Prerequisites: []string{"色校正出し/確認"},
	},
	"入稿データ作成": {
		Description:   "印刷会社に渡す入稿データを作成します。",
		Deliverable:   "入稿データ一式",
		Tips:          []string{"印刷会社の仕様を確認", "フォントの埋め込み", "画像のリンク切れ注意"},
		Checkpoints:   []string{"データに不備はないか", "仕様通りに作成されているか"},
		Prerequisites: []string{"色校正戻し/確定"},
	},
	"印刷発注/公開準備": {
		Description:   "印刷を発注、またはWeb公開の準備をします。",
		Deliverable:   "発注書、公開準備完了報告",
		Tips:          []string{"納期・部数を再確認", "納品場所を手配", "公開日時を関係者に周知"},
		Checkpoints:   []string{"発注内容は正確か", "受け取り体制は整っているか"},
		Prerequisites: []string{"入稿データ作成"},
	},
	"校了/最終承認": {
		Description:   "制作物の最終承認を行い、校了とします。",
		Deliverable:   "校了承認書",
		Tips:          []string{"責任者の最終確認", "校了後の修正は原則不可", "校了日を記録"},
		Checkpoints:   []string{"全ての承認者から了承を得たか", "公開して問題ないか"},
		Prerequisites: []string{"印刷発注/公開準備"},
	},
	"納品/公開": {
		Description:   "完成した広報物を納品、または公開します。",
		Deliverable:   "納品物、公開完了報告",
		Tips:          []string{"納品物の検品", "公開後の動作確認", "関係者への報告"},
		Checkpoints:   []string{"納品物に問題はないか", "公開は正しく行われたか"},
		Prerequisites: []string{"校了/最終承認"},
	},
	"配布/告知": {
		Description:   "広報物を配布し、関係者に告知します。",
		Deliverable:   "配布完了報告",
		Tips:          []string{"配布先リストを作成", "配布方法を確認", "SNS等での告知も検討"},
		Checkpoints:   []string{"予定通り配布できたか", "反響を記録しているか"},
		Prerequisites: []string{"納品/公開"},
	},
	"振り返り/ナレッジ整理": {
		Description:   "プロジェクト全体を振り返り、学びを整理します。",
		Deliverable:   "振り返りレポート",
		Tips:          []string{"良かった点・改善点を両方", "次回に活かせる形で記録", "チームで共有"},
		Checkpoints:   []string{"反省点は明確か", "次回のアクションは決まったか"},
		Prerequisites: []string{"配布/告知"},
	},
}

// LookupGuidance resolves a task name to its guidance entry. The match
// order is exact, then with stray "?" decorations stripped, then
// substring in either direction. Returns the resolved key so callers can
// fetch the matching English entry too.
func LookupGuidance(name string) (Guidance, string, bool) {
	key := name
	if _, ok := guidanceJA[key]; !ok {
		key = strings.TrimSpace(strings.ReplaceAll(name, "?", ""))
	}
	if _, ok := guidanceJA[key]; !ok && key != "" {
		// Map order is random; sort so a partial match resolves the same
		// way every time.
		keys := make([]string, 0, len(guidanceJA))
		for k := range guidanceJA {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if strings.Contains(key, k) || strings.Contains(k, key) {
				key = k
				break
			}
		}
	}
	g, ok := guidanceJA[key]
	if !ok {
		return Guidance{}, "", false
	}
	return g, key, true
}

// GuidanceEN returns the English guidance entry for a resolved canonical
// key, if one exists.
func GuidanceEN(key string) (Guidance, bool) {
	g, ok := guidanceEN[key]
	return g, ok
}

// Prerequisites returns the prerequisite canonical names for a task, or
// nil when it has none or is unknown. Dependency edges always resolve
// through the canonical-language table regardless of display language.
func Prerequisites(name string) []string {
	g, _, ok := LookupGuidance(name)
	if !ok {
		return nil
	}
	return g.Prerequisites
}
