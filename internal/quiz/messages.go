package quiz

// User-facing texts. Validation failures always come back as one of these,
// never as a raw error.

const msgWelcome = `👋 Привет! Этот бот поможет определить твой биологический возраст — показатель реального состояния твоего организма. Он показывает, насколько быстро идёт процесс старения.

📋 Данный опросник составлен на основе анализа рекомендаций по здоровому долголетию от таких авторитетных источников как:

• Всемирная организация здравоохранения (ВОЗ)
• Национальный институт здоровья (NIH, USA)

🧮 Расчёт биологического возраста проводится по методу интегральной оценки факторов образа жизни.

Ответь честно на 20 ключевых вопросов, относящихся к образу жизни и здоровью, и мы рассчитаем, насколько ты моложе или старше твоего паспортного возраста.

🔒 Ваши персональные данные (возраст, ответы) мы не сохраняем.`

const msgAgePrompt = `🎂 Для начала введи свой паспортный возраст (число от 16 до 99):`

const msgInvalidAge = `❌ Пожалуйста, введите корректный возраст — число от 16 до 99.`

const msgAgeAccepted = `✅ Ваш возраст: %d лет. Отлично, начинаем тест!

Вам будет предложено %d вопросов. Выбирайте наиболее подходящий вариант ответа.`

const msgSelectOption = `⚠️ Пожалуйста, выберите один из предложенных вариантов ответа, нажав на кнопку.`

const msgFinishedReminder = `✅ Тест завершён! Чтобы пройти заново, отправьте /test`

const msgHelp = `ℹ️ Справка по использованию бота:

/start — начать работу с ботом
/test — начать тест заново
/help — показать эту справку

Бот задаст 20 вопросов о вашем образе жизни и рассчитает биологический возраст.`

const msgResultYounger = `🎉 Поздравляем! Ваш биологический возраст ниже паспортного. Это значит, вы ведёте здоровый образ жизни и замедляете процессы старения. Так держать!`

const msgResultOlder = `⚠️ Ваш биологический возраст выше паспортного. Это повод задуматься о внесении положительных изменений в свой образ жизни! Возможно, стоит пересмотреть режим дня, питание или уровень физической активности.`

const msgResultEqual = `✅ Ваш биологический возраст соответствует паспортному. Ваш образ жизни является стандартным. Есть куда стремиться!`

const msgResult = `📊 Результаты теста:

🎂 Ваш паспортный возраст: %d лет
🔢 Сумма набранных баллов: %s
──────────────────────────
🧬 Ваш биологический возраст: %d лет

%s

Чтобы пройти тест заново, отправьте /test`
