// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package simulation

// Questions is the simple simulation questionnaire in display order.
var Questions = []Question{
	{
		ID:      "q1",
		Number:  1,
		Title:   "来てほしいお客さんのイメージ",
		Prompt:  "開業したお店には、どんなお客さんに一番来てほしいですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "office_workers", Label: "仕事帰りの会社員"},
			{Value: "local_families", Label: "地元の家族連れ"},
			{Value: "solo_diners", Label: "ひとりで静かに食事・お酒を楽しみたい人"},
			{Value: "couples", Label: "カップル・夫婦"},
			{Value: "tourists", Label: "観光客・インバウンドのお客さん"},
			{Value: "students", Label: "学生・若者が中心"},
			{Value: "undecided_audience", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q2",
		Number:  2,
		Title:   "お店の雰囲気イメージ",
		Prompt:  "あなたのお店は、どんな雰囲気のお店にしたいですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "casual", Label: "カジュアルで入りやすい雰囲気"},
			{Value: "calm", Label: "落ち着いてゆっくり過ごせる雰囲気"},
			{Value: "lively", Label: "賑やかでワイワイ楽しめる雰囲気"},
			{Value: "luxury", Label: "ちょっと特別感・高級感のある雰囲気"},
			{Value: "female_friendly", Label: "女性一人でも入りやすい雰囲気"},
			{Value: "family_friendly", Label: "子ども連れでも安心できる雰囲気"},
			{Value: "undecided_mood", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q3",
		Number:  3,
		Title:   "利用シーンのイメージ",
		Prompt:  "お店は、どんなシーンで使ってもらいたいですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "after_work_drink", Label: "仕事帰りに軽く一杯飲む場"},
			{Value: "full_meal", Label: "しっかり食事を楽しむ場"},
			{Value: "celebration", Label: "記念日やデートで使う場"},
			{Value: "group_party", Label: "仲間との飲み会・打ち上げの場"},
			{Value: "family_outing", Label: "家族での外食の場"},
			{Value: "second_bar", Label: "2軒目・バー使いの場"},
			{Value: "undecided_scene", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q4",
		Number:  4,
		Title:   "お店のコンセプト像",
		Prompt:  "一言でいうと、あなたのお店はどんなコンセプトが近いですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "everyday_spot", Label: "日常使いできる「普段着」のお店"},
			{Value: "special_day", Label: "特別な日・ハレの日に行きたいお店"},
			{Value: "regulars", Label: "地元の常連さんが集まるお店"},
			{Value: "drink_focused", Label: "お酒を楽しむことが中心のお店"},
			{Value: "healthy", Label: "ヘルシー志向・健康を意識したお店"},
			{Value: "quick_service", Label: "スピード重視でサクッと済ませられるお店"},
			{Value: "undecided_concept", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q5",
		Number:  5,
		Title:   "客単価（夜）のイメージ",
		Prompt:  "夜の1人あたりの予算イメージはどのくらいですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "up_to_2000", Label: "〜2,000円くらい"},
			{Value: "2001_to_3000", Label: "2,001〜3,000円くらい"},
			{Value: "3001_to_4000", Label: "3,001〜4,000円くらい"},
			{Value: "4001_to_6000", Label: "4,001〜6,000円くらい"},
			{Value: "6001_to_8000", Label: "6,001〜8,000円くらい"},
			{Value: "over_8001", Label: "8,001円以上"},
			{Value: "undecided_budget", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q6",
		Number:  6,
		Title:   "メインの料理ジャンル",
		Prompt:  "どんな料理ジャンルのお店にしたいですか？（複数選択可）",
		Kind:    Multi,
		Options: []Option{
			{Value: "izakaya", Label: "居酒屋・おつまみ系"},
			{Value: "japanese", Label: "和食・割烹・おばんざい"},
			{Value: "yakitori", Label: "焼き鳥・串焼き"},
			{Value: "yakiniku", Label: "焼肉・ホルモン"},
			{Value: "ramen", Label: "ラーメン・つけ麺"},
			{Value: "curry_ethnic", Label: "カレー・エスニック料理"},
			{Value: "french", Label: "フレンチ"},
			{Value: "italian", Label: "イタリアン"},
			{Value: "bistro", Label: "ビストロ・洋風バル"},
			{Value: "cafe", Label: "カフェ・軽食・サンドイッチ"},
			{Value: "sweets", Label: "スイーツ・デザート中心"},
			{Value: "bar", Label: "バー（お酒中心で料理は軽め）"},
			{Value: "undecided_cuisine", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q7",
		Number:  7,
		Title:   "ドリンクのこだわりどころ",
		Prompt:  "ドリンクについて、どこに一番こだわりたいですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "draft_beer", Label: "生ビールの種類・質にこだわりたい"},
			{Value: "japanese_sake", Label: "日本酒・焼酎など「和酒」にこだわりたい"},
			{Value: "wine_lineup", Label: "ワインのラインナップにこだわりたい"},
			{Value: "cocktails", Label: "カクテル・サワーのバリエーションにこだわりたい"},
			{Value: "non_alcohol", Label: "ノンアルコール・ソフトドリンクを充実させたい"},
			{Value: "food_focus", Label: "ドリンクにはあまりこだわらず、料理を中心にしたい"},
			{Value: "undecided_drink", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q8",
		Number:  8,
		Title:   "座席数／店舗数のイメージ",
		Prompt:  "開業するとしたら、座席数や将来の店舗数のイメージはどのあたりですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "up_to_8", Label: "〜8席（ごく小さな店）"},
			{Value: "9_to_16", Label: "9〜16席（小さめの店）"},
			{Value: "17_to_24", Label: "17〜24席（中くらいの店）"},
			{Value: "25_to_40", Label: "25〜40席（やや大きめの店）"},
			{Value: "41_plus", Label: "41席以上（大きめ〜かなり大きな店）"},
			{Value: "two_or_more_shops", Label: "将来的に2店舗以上の展開も視野に入れている"},
			{Value: "undecided_scale", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q9",
		Number:  9,
		Title:   "出店エリアのイメージ",
		Prompt:  "お店を出すとしたら、どんな場所に出したいイメージがありますか？",
		Kind:    Single,
		Options: []Option{
			{Value: "near_station", Label: "駅から徒歩5分以内の駅前エリア"},
			{Value: "office_area", Label: "オフィス街"},
			{Value: "residential_area", Label: "住宅街の中"},
			{Value: "shopping_street", Label: "商店街の一角"},
			{Value: "tourist_area", Label: "観光地・繁華街エリア"},
			{Value: "suburban", Label: "郊外のロードサイドや郊外型商業施設"},
			{Value: "undecided_location", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q10",
		Number:  10,
		Title:   "営業時間帯のイメージ",
		Prompt:  "どの時間帯の営業をメインにしたいですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "morning_to_lunch", Label: "朝〜ランチ中心（7〜15時ごろ）"},
			{Value: "lunch_to_cafe", Label: "ランチ〜カフェ中心（11〜17時ごろ）"},
			{Value: "dinner", Label: "ディナー中心（17〜22時ごろ）"},
			{Value: "dinner_to_midnight", Label: "ディナー〜深夜まで（17〜24時ごろ）"},
			{Value: "late_night", Label: "深夜営業がメイン（22時以降）"},
			{Value: "all_day", Label: "昼も夜も通しで営業したい"},
			{Value: "undecided_hours", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q11",
		Number:  11,
		Title:   "大事にしたい価値観",
		Prompt:  "お店作りで、特に大事にしたい価値観はどれですか？",
		Kind:    Single,
		Options: []Option{
			{Value: "food_quality", Label: "料理のクオリティ・おいしさ"},
			{Value: "affordable", Label: "価格の手頃さ・コスパの良さ"},
			{Value: "comfort", Label: "居心地の良さ・長居しやすさ"},
			{Value: "staff_distance", Label: "スタッフとの程よい距離感・会話"},
			{Value: "hygiene", Label: "衛生面・安全性・安心感"},
			{Value: "local_connection", Label: "地元とのつながり・地域への貢献"},
			{Value: "undecided_values", Label: "まだ決まっていない", Unknown: true},
		},
	},
	{
		ID:      "q12",
		Number:  12,
		Title:   "1年後の「成功」イメージ",
		Prompt:  "開業して1年後、どんな状態になっていたら「成功した」と感じますか？",
		Kind:    Single,
		Options: []Option{
			{Value: "loyal_customers", Label: "常連さんがしっかりついている"},
			{Value: "stable_revenue", Label: "月々の売上・利益が安定している"},
			{Value: "healthy_work", Label: "自分やスタッフの働き方に無理がなく、時間も確保できている"},
			{Value: "high_reviews", Label: "口コミサイトやSNSでの評価が高い"},
			{Value: "local_reputation", Label: "地域で名前が知られ、指名で来店してもらえている"},
			{Value: "second_store_plan", Label: "2店舗目・新業態の構想が見えてきている"},
			{Value: "undecided_success", Label: "まだ決まっていない", Unknown: true},
		},
	},
}
