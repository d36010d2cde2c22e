// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cards

// Card catalogs mirror the backend's card constants; ids are strings on the wire.

var conceptCards = []Card{
	{ID: "1-1", Title: "動機・世界観", Step: 1, Opening: "あなたがこのお店を通じて『どんな世界観』を実現したいですか？お店に一歩入ったお客様にどんな気持ちになってほしいですか？"},
	{ID: "1-2", Title: "ターゲット", Step: 1, Opening: "どんなお客様を『最も幸せにしたい』と考えていますか？そのお客様の性別、年齢層、ライフスタイルなどの詳細を教えてください。"},
	{ID: "1-3", Title: "コア価値", Step: 1, Opening: "他店ではなく、お客様があなたのお店を選ぶ『決定的な理由』は何ですか？（例：味、雰囲気、価格、接客など）"},
	{ID: "1-4", Title: "店舗タイプ", Step: 1, Opening: "あなたのお店は、お客様にとって『日常使い』ですか？それとも『ハレの日（特別な日）』の利用ですか？利用シーンを具体的に想定してください。"},
	{ID: "2-1", Title: "競合分析", Step: 2, Opening: "想定ターゲット層が現在利用している競合店を挙げてください。その店の『強み』に対し、あなたの店が勝てるポイントはどこだと考えますか？"},
	{ID: "2-2", Title: "提供体験", Step: 2, Opening: "お客様がお店で過ごす時間の中で、『最も感動したり、印象に残ったりする体験』はどのようなものになるべきですか？（例：サプライズ、五感への刺激）"},
	{ID: "2-3", Title: "店舗の個性", Step: 2, Opening: "内装、BGM、照明、接客などを合わせて、あなたのお店を『一言でいうとどんな場所』と表現できますか？"},
	{ID: "2-4", Title: "顧客との関係性", Step: 2, Opening: "お客様があなたの店に対して『愛着を持ち、常連になる』ための仕組みや仕掛けをどう作りますか？（例：会員制度、特別なサービスなど）"},
	{ID: "3-1", Title: "提供価値の整合性", Step: 3, Opening: "あなたが設定した『ターゲット』と『提供するコア価値』は矛盾なく整合していますか？AIに再確認させてください。"},
	{ID: "3-2", Title: "メッセージ/キャッチコピー", Step: 3, Opening: "あなたの店を一言で表現する『キャッチフレーズ』を考えてください。そのフレーズはターゲット層に響きますか？"},
	{ID: "3-3", Title: "未来への展望", Step: 3, Opening: "このコンセプトが実現したとして、今後3～5年間でどんなブランド/お店に成長させたいですか？"},
}

var menuCards = []Card{
	{ID: "1", Title: "看板メニュー（スペシャリティ）", Step: 1, Opening: "【STEP 1/3 - 質問1】お店の顔となる「看板メニュー」を1つ決定してください。お客様が「これを食べに来る」と言える強力な商品は何ですか？その理由も教えてください。"},
	{ID: "2", Title: "メニュー構成比", Step: 1, Opening: "【STEP 1/3 - 質問2】売上の構成比として、フードとドリンクの割合をどう想定しますか？（例: フード7:ドリンク3、食事メインのお店）"},
	{ID: "3", Title: "品数とカテゴリー", Step: 1, Opening: "【STEP 1/3 - 質問3】メニューのカテゴリー（前菜、メイン、〆、デザートなど）と、それぞれの概算の品数を決めてください。品数は多すぎませんか？オペレーション負荷も考慮して考えてみましょう。"},
	{ID: "4", Title: "価格帯（プライスゾーン）", Step: 1, Opening: "【STEP 1/3 - 質問4】看板メニューや中心となる商品の価格帯を決定してください。収支予測で決めた客単価と整合していますか？"},
	{ID: "5", Title: "仕入れ・こだわり食材", Step: 2, Opening: "【STEP 2/3 - 質問5】メニューの核となる主要食材（肉、魚、野菜など）の仕入れルートやこだわりを明確にしてください。（例: 産地直送、市場仕入れ）"},
	{ID: "6", Title: "原価率設定（メニュー別）", Step: 2, Opening: "【STEP 2/3 - 質問6】看板メニューは原価をかけて集客し、サイドメニューで利益を取るなど、メニューごとの原価率のメリハリをどうつけますか？「ミックス原価」の考え方を参考にしてみましょう。"},
	{ID: "7", Title: "ドリンク戦略", Step: 2, Opening: "【STEP 2/3 - 質問7】利益率の高いドリンクメニューの戦略を立ててください。何に力を入れますか？（例: こだわりのクラフトビール、自家製サワー、厳選ワイン）"},
	{ID: "8", Title: "季節性・更新頻度", Step: 2, Opening: "【STEP 2/3 - 質問8】メニューは固定ですか？それとも日替わり・週替わり・季節替わりを取り入れますか？その更新頻度はオペレーション的に可能ですか？"},
	{ID: "9", Title: "調理効率（オペレーション）", Step: 3, Opening: "【STEP 3/3 - 質問9】オペレーション軸で決めた人員体制で回せるように、「注文を受けてから作るもの」と「事前に仕込んでおくもの（すぐ出る）」のバランスを決定してください。"},
	{ID: "10", Title: "厨房機器との整合性", Step: 3, Opening: "【STEP 3/3 - 質問10】決定したメニューを調理するために必要な厨房機器は、内装・外装軸でリストアップしたものと合致していますか？足りない機器や不要な機器はありませんか？"},
	{ID: "11", Title: "メニューブック構成", Step: 3, Opening: "【STEP 3/3 - 質問11】お客様が注文しやすいメニューブック（またはモバイルオーダー画面）の構成を文字で設計してください。一番売りたい商品をどこに配置しますか？"},
	{ID: "12", Title: "AI模擬来店（最終確認）", Step: 3, Opening: "【STEP 3/3 - 質問12】これまでのメニュー構成で、仮想のお客様として注文を行います。客単価と原価率が目標通りに着地するか、シミュレーションしましょう。"},
}

var fundingPlanCards = []Card{
	{ID: "1", Title: "自己資金", Step: 1, Opening: "【STEP 1/4】開業にあたって、現在ご自身で準備できる自己資金の総額はいくらですか？その内訳や準備方法も教えてください。"},
	{ID: "2", Title: "内装・設備費", Step: 1, Opening: "【STEP 1/4】内装工事、厨房設備、空調等の概算の初期設備費用をいくらと見込んでいますか？物件の状態や必要な設備を考慮して考えてみましょう。"},
	{ID: "3", Title: "リース・中古の活用", Step: 1, Opening: "【STEP 1/4】初期費用を抑えるために、厨房機器などでリースや中古品の活用を検討していますか？はいの場合、その金額をいくらと見込んでいますか？"},
	{ID: "4", Title: "敷金・保証金", Step: 1, Opening: "【STEP 1/4】契約を予定している物件の敷金や保証金（初期固定費）はいくらですか？物件の条件や契約内容を確認しながら考えてみましょう。"},
	{ID: "5", Title: "販促・広告費", Step: 2, Opening: "【STEP 2/4】オープン時のチラシ、ウェブサイト、SNS広告など、開業初期の販促・広告費用はいくらと見込みますか？効果的な集客方法も一緒に考えてみましょう。"},
	{ID: "6", Title: "運転資金（月額）", Step: 2, Opening: "【STEP 2/4】収支予測で確定した月々の固定費総額（家賃、人件費など）はいくらですか？収支予測の結果を参考にしながら、現実的な金額を設定しましょう。"},
	{ID: "7", Title: "必要運転資金月数", Step: 2, Opening: "【STEP 2/4】開業後、売上が軌道に乗るまでの期間を見込み、何ヶ月分の運転資金が必要だと考えていますか？業種や立地、集客戦略を考慮して考えてみましょう。"},
	{ID: "8", Title: "運転資金総額", Step: 2, Opening: "【STEP 2/4】運転資金（月額）と必要運転資金月数を掛け合わせた、必要運転資金総額を確認しましょう。この金額で問題ありませんか？"},
	{ID: "9", Title: "初期投資総額", Step: 3, Opening: "【STEP 3/4】これまでに確定した項目（初期費用＋運転資金）を合計した初期投資総額を確認しましょう。この金額で問題ありませんか？"},
	{ID: "10", Title: "不足資金", Step: 3, Opening: "【STEP 3/4】初期投資総額から自己資金を差し引いた、不足する資金（融資希望額）を確認しましょう。この金額で問題ありませんか？"},
	{ID: "11", Title: "借入希望先", Step: 3, Opening: "【STEP 3/4】不足資金を調達するために、どの金融機関（例: 日本政策金融公庫、銀行、信用金庫）に融資を申し込む予定ですか？各機関の特徴も考慮して選びましょう。"},
	{ID: "12", Title: "資金調達目標日", Step: 3, Opening: "【STEP 3/4】開業予定日から逆算して、資金調達（融資実行）の完了目標日をいつに設定しますか？融資審査の期間も考慮して、余裕を持った日程を設定しましょう。"},
}

var interiorExteriorCards = []Card{
	{ID: "1", Title: "デザインテーマ", Step: 1, Opening: "【STEP 1/3 - 質問1】お店の世界観を表すデザインのキーワードを決めてください。和モダン、インダストリアル、北欧風など、どのようなスタイルを目指しますか？その理由も教えてください。"},
	{ID: "2", Title: "キーカラー・素材", Step: 1, Opening: "【STEP 1/3 - 質問2】お店のテーマカラー（キーカラー）と、主に使用したい素材（木材、コンクリート、タイルなど）を決定してください。コンセプトとの整合性も考えてみましょう。"},
	{ID: "3", Title: "ファサード（外観）の在り方", Step: 1, Opening: "【STEP 1/3 - 質問3】お客様が最初に見る外観は、中が見える「開放的」な作りですか？それとも「隠れ家」的なクローズドな作りですか？その理由も教えてください。"},
	{ID: "4", Title: "ゾーニング（配置）", Step: 1, Opening: "【STEP 1/3 - 質問4】オペレーション軸で決めた接客スタイルに基づき、厨房と客席の配置（ゾーニング）の大枠を決定してください。カウンターメインでライブ感を出すか、個室重視でプライベート感を出すかなど、具体的に考えてみましょう。"},
	{ID: "5", Title: "厨房機器・レイアウト", Step: 2, Opening: "【STEP 2/3 - 質問5】メニュー軸の調理工程に基づき、必須となる厨房機器（強力な火力、ピザ釜など）と、その配置の優先順位をリストアップしてください。"},
	{ID: "6", Title: "照明の雰囲気", Step: 2, Opening: "【STEP 2/3 - 質問6】お店の雰囲気を決定づける照明について決めましょう。全体を明るくしますか？それともテーブル上のスポットライトでムードを作りますか？"},
	{ID: "7", Title: "家具・什器の調達", Step: 2, Opening: "【STEP 2/3 - 質問7】客席のテーブルや椅子の調達方針を決めてください。新品購入、中古・アンティーク活用、造作/オーダーメイドなど、どの方法を選びますか？"},
	{ID: "8", Title: "看板・サイン計画", Step: 2, Opening: "【STEP 2/3 - 質問8】店名ロゴやメニューを表示する看板は、どこに設置し、何をアピールしますか？遠くからの視認性重視か、入店直前のメニュー訴求重視か、考えてみましょう。"},
	{ID: "9", Title: "予算配分（メリハリ）", Step: 3, Opening: "【STEP 3/3 - 質問9】予算内で理想を実現するために、お金をかける場所（こだわり）と、節約する場所（妥協点）を明確に分けてください。客席は豪華に、厨房やトイレは標準仕様でなど、具体的に考えてみましょう。"},
	{ID: "10", Title: "施工業者の選定方針", Step: 3, Opening: "【STEP 3/3 - 質問10】内装工事は、デザイン設計と施工を分ける「設計施工分離」にしますか？一括で頼める「設計施工一貫」にしますか？それぞれのメリット・デメリットも考慮してください。"},
	{ID: "11", Title: "参考イメージの保存", Step: 3, Opening: "【STEP 3/3 - 質問11】あなたのイメージに近い他店の写真やWebサイトのURLがあれば、ここにメモして、「どの部分が気に入っているか」（例：床の色、照明の形）を具体的に書き残してください。"},
	{ID: "12", Title: "デザイン要望書の完成", Step: 3, Opening: "【STEP 3/3 - 質問12】これまでの決定事項を統合し、内装業者に渡すための「デザイン要望書（テキスト）」としてまとめます。内容に漏れや矛盾がないか最終確認してください。"},
}

var revenueForecastCards = []Card{
	{ID: "1", Title: "客単価（昼）", Step: 1, Opening: "【STEP 1/3 - 質問1】ターゲット客層を考慮した昼の客単価を確定しましょう。どのくらいの金額を想定していますか？その根拠も教えてください。"},
	{ID: "2", Title: "客単価（夜）", Step: 1, Opening: "【STEP 1/3 - 質問2】ターゲット客層を考慮した夜の客単価を確定しましょう。どのくらいの金額を想定していますか？その根拠も教えてください。"},
	{ID: "3", Title: "席数", Step: 1, Opening: "【STEP 1/3 - 質問3】物件の坪数やコンセプトからみて、客席数を何席と設定しますか？その理由も教えてください。"},
	{ID: "4", Title: "原価率目標", Step: 1, Opening: "【STEP 1/3 - 質問4】利益目標を達成するため、食材原価率の目標を何パーセントに設定しますか？業界平均や競合店の情報も参考にしながら考えてみましょう。"},
	{ID: "5", Title: "営業日数", Step: 1, Opening: "【STEP 1/3 - 質問5】無理のない経営と売上目標を両立するため、月の営業日数を何日としますか？スタッフの休みやメンテナンス日も考慮してください。"},
	{ID: "6", Title: "営業時間（昼）", Step: 2, Opening: "【STEP 2/3 - 質問6】客単価と立地を考慮し、昼の営業時間は何時から何時までとしますか？ランチタイムの需要や競合店の営業時間も参考にしてください。"},
	{ID: "7", Title: "営業時間（夜）", Step: 2, Opening: "【STEP 2/3 - 質問7】客単価と立地を考慮し、夜の営業時間は何時から何時までとしますか？ディナータイムの需要や競合店の営業時間も参考にしてください。"},
	{ID: "8", Title: "客席回転率（昼）", Step: 2, Opening: "【STEP 2/3 - 質問8】昼の客席回転率を何回転と見込みますか？ランチタイムの長さやメニューの性質、ターゲット客層の滞在時間を考慮して考えてみましょう。"},
	{ID: "9", Title: "客席回転率（夜）", Step: 2, Opening: "【STEP 2/3 - 質問9】夜の客席回転率を何回転と見込みますか？ディナータイムの長さやメニューの性質、ターゲット客層の滞在時間を考慮して考えてみましょう。"},
	{ID: "10", Title: "オーナー報酬/役員報酬", Step: 2, Opening: "【STEP 2/3 - 質問10】オーナーであるあなた自身の毎月の報酬（人件費）をいくらと設定しますか？生活費や将来の投資も考慮しながら、無理のない金額を設定しましょう。"},
	{ID: "11", Title: "社員・人件費（オーナー除く）", Step: 3, Opening: "【STEP 3/3 - 質問11】オーナー以外に社員は何名採用しますか？また、その社員とアルバイトの人件費総額（オーナー報酬除く）はいくらと見込みますか？必要なスキルや経験も考慮してください。"},
	{ID: "12", Title: "家賃（月額）", Step: 3, Opening: "【STEP 3/3 - 質問12】現在検討している物件の月額家賃（共益費等含む固定費）はいくらですか？立地や坪数、設備などを考慮した適正な金額か確認しましょう。"},
	{ID: "13", Title: "水道光熱費・通信費", Step: 3, Opening: "【STEP 3/3 - 質問13】水道光熱費や通信費など、毎月の概算固定経費はいくらと見込みますか？席数や坪数、営業時間を考慮して、現実的な金額を設定しましょう。"},
	{ID: "14", Title: "人件費率（目標）", Step: 3, Opening: "【STEP 3/3 - 質問14】最終的な総人件費率（オーナー報酬含む）の目標を何パーセントに設定しますか？業界の適正比率（通常25-35%）を参考にしながら、あなたの店に合った目標を設定しましょう。"},
	{ID: "15", Title: "販管費率（目標）", Step: 3, Opening: "【STEP 3/3 - 質問15】その他の販管費率（広告宣伝費、消耗品費など）の目標を何パーセントに設定しますか？業界の適正比率（通常5-10%）を参考にしながら、あなたの店に合った目標を設定しましょう。"},
}
